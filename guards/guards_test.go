package guards

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	guarded "github.com/guarded-fn/guarded-go"
)

func TestLogged_RecordsEveryScope(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cell := guarded.New([]int{}, Logged[[]int](logger, "content changed"))

	for _, n := range []int{1, 2} {
		if err := cell.With(func(v *[]int) { *v = append(*v, n) }); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	out := buf.String()
	if strings.Count(out, "content changed") != 2 {
		t.Errorf("expected two log records, got output:\n%s", out)
	}
	if !strings.Contains(out, "[1 2]") {
		t.Errorf("expected final value in output, got:\n%s", out)
	}
}

type document struct {
	A int    `json:"a"`
	S string `json:"s"`
	V []int  `json:"v"`
}

func TestJSONFile_WritesAfterEveryScope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	cell := guarded.New(document{A: 0, S: "hello", V: []int{1, 2}}, JSONFile[document](path, func(err error) {
		t.Fatalf("unexpected persistence error: %v", err)
	}))

	if err := cell.With(func(d *document) { d.S = "Hello world" }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected data file to exist, got %v", err)
	}

	var stored document
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if stored.S != "Hello world" || stored.A != 0 || len(stored.V) != 2 {
		t.Errorf("expected persisted mutation, got %+v", stored)
	}
}

func TestJSONFile_ReportsWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data.json")

	var reported error
	cell := guarded.New(0, JSONFile[int](path, func(err error) { reported = err }))

	if err := cell.With(func(v *int) { *v = 1 }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reported == nil {
		t.Error("expected write error to reach the sink")
	}
}

func TestChain_RunsInOrder(t *testing.T) {
	var order []string

	cell := guarded.New(0, Chain(
		func(*int) { order = append(order, "first") },
		nil,
		func(*int) { order = append(order, "second") },
	))

	if err := cell.With(func(v *int) { *v = 1 }); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}
