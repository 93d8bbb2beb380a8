package forms

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Result is the outcome of applying a schema to a raw field map. Exactly one
// of Data / FieldErrors is meaningful: Data when Valid() is true, FieldErrors
// otherwise.
type Result struct {
	// Data holds the values of declared fields that were present in the
	// submission. Undeclared keys never pass through.
	Data map[string]string
	// FieldErrors maps each violating field to its messages. Lists are always
	// non-empty when present.
	FieldErrors map[string][]string
}

// Valid reports whether the submission satisfied every field specification.
func (r *Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// Validate applies the schema to a flat field map. All violations are
// collected in a single pass; there is no short-circuit on the first error.
// The function is pure: the same inputs always produce the same Result.
func (s *Schema) Validate(fields map[string]string) *Result {
	data := make(map[string]string, len(s.Fields))
	errs := make(map[string][]string)

	for _, f := range s.Fields {
		value, present := fields[f.Name]

		switch f.Kind {
		case KindEmail:
			// An empty or malformed value both read as a bad address to the
			// user, so they share one message.
			if err := validate.Var(value, "required,email"); err != nil {
				errs[f.Name] = []string{f.Message}
				continue
			}

		case KindEnum:
			if !present {
				if f.Required {
					errs[f.Name] = []string{f.Message}
				}
				continue
			}
			if !slices.Contains(f.Allowed, value) {
				errs[f.Name] = []string{f.Message}
				continue
			}

		default:
			if f.Required && value == "" {
				errs[f.Name] = []string{f.Message}
				continue
			}
			if !present {
				continue
			}
		}

		data[f.Name] = value
	}

	return &Result{Data: data, FieldErrors: errs}
}
