package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidation makes validator report JSON field names and adds the
// custom tags used by request models. Safe to call more than once.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// BindingError converts an error returned by gin binding into a
// *ValidationError, or ErrPayloadTooLarge when the body limit tripped.
func BindingError(err error) error {
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) || strings.Contains(err.Error(), "http: request body too large") {
		return ErrPayloadTooLarge
	}

	verr := &ValidationError{}
	if errors.As(err, &verr) {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var numErr *strconv.NumError

	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			verr.Add(fieldPath(fe), validationMessage(fe))
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = NonFieldErrors
		}
		verr.Add(field, fmt.Sprintf("Expected a value of type %s.", typeErr.Type.String()))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		verr.Add(NonFieldErrors, "Malformed JSON body.")
	case errors.Is(err, io.EOF):
		verr.Add(NonFieldErrors, "Request body is empty.")
	case errors.As(err, &numErr):
		verr.Add(NonFieldErrors, fmt.Sprintf("Invalid number %q.", numErr.Num))
	default:
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			verr.Add(fieldErr.Field, fieldErr.Message)
		} else {
			verr.Add(NonFieldErrors, err.Error())
		}
	}
	return verr
}

// FieldError lets custom unmarshalers point at the offending field.
type FieldError struct {
	Field   string
	Message string
}

func (f *FieldError) Error() string {
	return f.Field + ": " + f.Message
}

// fieldPath strips the struct name from the namespace, keeping nested paths
// such as itinerary_days[0].day.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "min":
		if isNumeric(fe.Kind()) {
			return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "max":
		if isNumeric(fe.Kind()) {
			return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
		}
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("\"%v\" is not a valid choice.", fe.Value())
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "lt":
		return fmt.Sprintf("Ensure this value is less than %s.", fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// RejectNulls reports the fields of target that body sets to JSON null when
// they cannot hold one: required fields and plain scalars. Decoding null
// leaves a field untouched, so without this a partial update would keep the
// stored value and answer 200. Malformed bodies are left to the binder.
func RejectNulls(body []byte, target interface{}) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	verr := &ValidationError{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		value, ok := raw[name]
		if !ok || !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		if hasRule(f.Tag.Get("binding"), "required") || isScalar(f.Type.Kind()) {
			verr.Add(name, "This field may not be null.")
		}
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// DecimalPlacesMessage returns the validation message for a value with more
// than places fractional digits, or "" when it fits.
func DecimalPlacesMessage(value float64, places int) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s)-i-1 > places {
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
	}
	return ""
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func isScalar(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Bool || isNumeric(k)
}
