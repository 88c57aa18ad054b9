package coerce

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrInvalidDocument is returned when a value cannot be decoded as YAML or JSON.
var ErrInvalidDocument = errors.New("invalid document")

// YAML returns a Func decoding a YAML document into T.
// JSON is valid YAML, so JSON-valued variables decode too.
func YAML[T any]() Func[T] {
	return func(s string) (T, error) {
		var target T

		err := yaml.Unmarshal([]byte(s), &target)
		if err != nil {
			var zero T

			return zero, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}

		return target, nil
	}
}
