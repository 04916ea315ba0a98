package resp

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens binding validation failures into field -> rule
// messages. It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out[fe.Field()] = msg
	}
	return out
}

// Invalid builds the 422 for a failed bind, attaching field errors when present.
func Invalid(err error) *Exception {
	if fields := FieldErrors(err); fields != nil {
		return Unprocessable("validation failed", fields)
	}
	return Unprocessable(err.Error())
}
