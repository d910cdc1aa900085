package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSON decodes and validates the request body into out. On failure
// it writes the 400 response itself and returns false, so handlers can
// bail with a bare return. Validation always precedes any store access.
func BindJSON(ctx *gin.Context, out any) bool {
	err := ctx.ShouldBindJSON(out)

	if err != nil {
		RespondBadRequest(ctx, bindErrorMessage(err, out))

		return false
	}

	return true
}

func bindErrorMessage(err error, out any) string {
	// validator errors (struct binding tags); report the first missing
	// field by its wire name
	var validatorErrs validator.ValidationErrors

	if errors.As(err, &validatorErrs) && len(validatorErrs) > 0 {
		first := validatorErrs[0]
		field := jsonFieldName(out, first.Field())

		if first.Tag() == "required" {
			return fmt.Sprintf("'%s' is required", field)
		}

		return fmt.Sprintf("'%s' is invalid", field)
	}

	// type mismatches carry the offending field
	var typeErr *json.UnmarshalTypeError

	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("'%s' is invalid", typeErr.Field)
	}

	var syntaxErr *json.SyntaxError

	if errors.As(err, &syntaxErr) {
		return "Invalid request body"
	}

	// coercion failures from custom unmarshalers end up here with a
	// usable message of their own
	msg := err.Error()

	if strings.Contains(msg, "invalid numeric value") || strings.Contains(msg, "invalid integer value") {
		return msg
	}

	return "Invalid request body"
}

// jsonFieldName maps a struct field name to its json tag on out's type.
func jsonFieldName(out any, structField string) string {
	t := reflect.TypeOf(out)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(structField); ok {
			name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")

			if name != "" && name != "-" {
				return name
			}
		}
	}

	return strings.ToLower(structField)
}
