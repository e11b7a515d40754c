package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"notblank": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
	}
)

// message flattens all field violations into one aggregated string so the
// caller sees every failing field at once, not just the first.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		parts := make([]string, 0, len(valErrors))

		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr == "" {
				parts = append(parts, valErr.Error())

				continue
			}

			errStr = strings.ReplaceAll(errStr, "{field}", field)
			errStr = strings.ReplaceAll(errStr, "{param}", param)

			parts = append(parts, errStr)
		}

		return strings.Join(parts, "; ")
	}

	return err.Error()
}
