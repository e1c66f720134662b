package validate

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NonEmptyString is an ozzo rule for untyped request fields that must hold a
// string with visible content. Request bodies arrive as untrusted field bags,
// so the type check happens here rather than at JSON binding.
var NonEmptyString = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
})

// TrimmedString returns the trimmed string value. Callers run NonEmptyString
// first; a non-string value yields the empty string.
func TrimmedString(value interface{}) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}
