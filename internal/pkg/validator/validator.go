package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// Generic message keys. Domain packages define their own on top of these.
const (
	KeyRequired      = "required"
	KeyInvalidOption = "invalid_option"
	KeyTooLong       = "too_long"
	KeyInvalid       = "invalid"
)

// ValidationError is a field-tagged problem. Index is set when the field
// belongs to an element of a list. MessageKey is an opaque identifier that
// the client localizes; no user-facing text is produced here.
type ValidationError struct {
	Field      string `json:"field"`
	Index      *int   `json:"index,omitempty"`
	MessageKey string `json:"message_key"`
}

func (e ValidationError) Key() string {
	if e.Index == nil {
		return e.Field
	}
	// break_periods.start_time + 1 -> break_periods[1].start_time
	if head, tail, ok := strings.Cut(e.Field, "."); ok {
		return head + "[" + strconv.Itoa(*e.Index) + "]." + tail
	}
	return e.Field + "[" + strconv.Itoa(*e.Index) + "]"
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Key()+": "+err.MessageKey)
	}
	return strings.Join(msgs, "; ")
}

// ToMap keys each error by its indexed field path. When a field carries more
// than one error the first one wins.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, exists := result[err.Key()]; !exists {
			result[err.Key()] = err.MessageKey
		}
	}
	return result
}

// Has reports whether any error carries the given message key.
func (v ValidationErrors) Has(messageKey string) bool {
	for _, err := range v {
		if err.MessageKey == messageKey {
			return true
		}
	}
	return false
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IntPtr returns a pointer to i, for building indexed errors.
func IntPtr(i int) *int {
	return &i
}

var (
	structValidator     *playground.Validate
	structValidatorOnce sync.Once
)

func engine() *playground.Validate {
	structValidatorOnce.Do(func() {
		v := playground.New(playground.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

// `break_periods[2].name` -> field, index
var indexedFieldRegex = regexp.MustCompile(`^([a-z_]+)\[(\d+)\]\.(.+)$`)

// Struct runs `validate` struct tags and converts failures into
// ValidationErrors keyed by json field names.
func Struct(s interface{}) error {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return fmt.Errorf("struct validation: %w", err)
	}

	var errs ValidationErrors
	for _, fe := range fieldErrs {
		// drop the root struct name
		_, path, _ := strings.Cut(fe.Namespace(), ".")

		ve := ValidationError{Field: path, MessageKey: messageKeyForTag(fe.Tag())}
		if m := indexedFieldRegex.FindStringSubmatch(path); m != nil {
			idx, _ := strconv.Atoi(m[2])
			ve.Field = m[1] + "." + m[3]
			ve.Index = IntPtr(idx)
		}
		errs = append(errs, ve)
	}
	return errs
}

func messageKeyForTag(tag string) string {
	switch tag {
	case "required":
		return KeyRequired
	case "oneof":
		return KeyInvalidOption
	case "max":
		return KeyTooLong
	default:
		return KeyInvalid
	}
}
