package guards

import (
	"encoding/json"
	"fmt"
	"os"

	guarded "github.com/guarded-fn/guarded-go"
)

// JSONFile returns a guard that serializes the value to path after every
// mutation scope, so the file always reflects the last completed scope.
//
// Marshal and write failures are reported to onError; a nil onError
// discards them.
func JSONFile[T any](path string, onError func(error)) guarded.GuardFunc[T] {
	if onError == nil {
		onError = func(error) {}
	}
	return func(v *T) {
		data, err := json.Marshal(v)
		if err != nil {
			onError(fmt.Errorf("serialize %s: %w", path, err))
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			onError(fmt.Errorf("write %s: %w", path, err))
		}
	}
}
