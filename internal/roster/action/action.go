// Package action turns raw request input into validated payloads. Nothing in
// here touches the store; a rejected payload never reaches it.
package action

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/roster/internal/roster/domain"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return v
}

// DecodeUserCreate decodes and validates a create-user body.
func DecodeUserCreate(body []byte) (domain.UserInput, error) {
	var in domain.UserInput
	if err := decodeRequired(body, &in); err != nil {
		return domain.UserInput{}, err
	}
	return in, check(in)
}

// DecodeUserUpdate decodes and validates an update-user body. An empty body is
// an empty patch.
func DecodeUserUpdate(body []byte) (domain.UserPatch, error) {
	var p domain.UserPatch
	if err := decodeOptional(body, &p); err != nil {
		return domain.UserPatch{}, err
	}
	return p, check(p)
}

// DecodeRoleCreate decodes and validates a create-role body.
func DecodeRoleCreate(body []byte) (domain.RoleInput, error) {
	var in domain.RoleInput
	if err := decodeRequired(body, &in); err != nil {
		return domain.RoleInput{}, err
	}
	return in, check(in)
}

// DecodeRoleUpdate decodes and validates an update-role body. An empty body is
// an empty patch.
func DecodeRoleUpdate(body []byte) (domain.RolePatch, error) {
	var p domain.RolePatch
	if err := decodeOptional(body, &p); err != nil {
		return domain.RolePatch{}, err
	}
	return p, check(p)
}

// ParseID parses an {id} path value. Only positive decimal integers are ids.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

func decodeRequired(body []byte, dst any) error {
	fields, err := objectFields(body)
	if err != nil {
		return err
	}
	if fields == 0 {
		return &Error{Message: "request body is empty", Err: ErrEmptyBody}
	}
	return unmarshal(body, dst)
}

func decodeOptional(body []byte, dst any) error {
	fields, err := objectFields(body)
	if err != nil {
		if errors.Is(err, ErrEmptyBody) {
			return nil
		}
		return err
	}
	if fields == 0 {
		return nil
	}
	return unmarshal(body, dst)
}

// objectFields reports how many top-level keys the body's JSON object has.
func objectFields(body []byte) (int, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return 0, &Error{Message: "request body is empty", Err: ErrEmptyBody}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return 0, &Error{Message: "request body must be a JSON object", Err: errors.Join(ErrMalformedBody, err)}
	}
	return len(obj), nil
}

func unmarshal(body []byte, dst any) error {
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return &Error{
				Message: "validation failed",
				Fields:  []FieldError{{Field: typeErr.Field, Error: "has the wrong type, expected " + typeErr.Type.String()}},
				Err:     errors.Join(ErrValidation, err),
			}
		}
		return &Error{Message: "request body must be a JSON object", Err: errors.Join(ErrMalformedBody, err)}
	}
	return nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Message: "validation failed", Err: errors.Join(ErrValidation, err)}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Error: describe(fe)})
	}
	return &Error{Message: "validation failed", Fields: fields, Err: ErrValidation}
}

func describe(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "must contain only letters and digits"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
