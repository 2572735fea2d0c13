package form

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/leadradar/leadradar-api/pkg/phone"
)

// FieldType is the closed set of input kinds a form field can declare.
type FieldType string

const (
	FieldTypeText        FieldType = "TEXT"
	FieldTypeTextarea    FieldType = "TEXTAREA"
	FieldTypeNumber      FieldType = "NUMBER"
	FieldTypeSelect      FieldType = "SELECT"
	FieldTypeMultiselect FieldType = "MULTISELECT"
	FieldTypeCheckbox    FieldType = "CHECKBOX"
	FieldTypeRadio       FieldType = "RADIO"
	FieldTypeEmail       FieldType = "EMAIL"
	FieldTypePhone       FieldType = "PHONE"
	FieldTypeDate        FieldType = "DATE"
	FieldTypeTime        FieldType = "TIME"
)

// AllFieldTypes lists every valid type in wire order.
var AllFieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextarea,
	FieldTypeNumber,
	FieldTypeSelect,
	FieldTypeMultiselect,
	FieldTypeCheckbox,
	FieldTypeRadio,
	FieldTypeEmail,
	FieldTypePhone,
	FieldTypeDate,
	FieldTypeTime,
}

// ParseFieldType normalizes a wire value to its canonical uppercase form.
func ParseFieldType(raw string) (FieldType, error) {
	ft := FieldType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllFieldTypes {
		if ft == known {
			return ft, nil
		}
	}
	return "", fmt.Errorf("unknown field type %q", raw)
}

// InputWidget names the widget a renderer should use for the type. The
// switch is exhaustive over the enum; a new type fails loudly here instead of
// falling back silently.
func (t FieldType) InputWidget() string {
	switch t {
	case FieldTypeText, FieldTypeEmail, FieldTypePhone:
		return "input"
	case FieldTypeTextarea:
		return "textarea"
	case FieldTypeNumber:
		return "number"
	case FieldTypeSelect:
		return "select"
	case FieldTypeMultiselect:
		return "multiselect"
	case FieldTypeCheckbox:
		return "checkbox"
	case FieldTypeRadio:
		return "radio"
	case FieldTypeDate:
		return "date"
	case FieldTypeTime:
		return "time"
	}
	panic(fmt.Sprintf("unhandled field type %q", string(t)))
}

// ValidateValue checks a submitted (already trimmed, non-empty) value against
// the field's declared type and options. The value is stored verbatim when
// the check passes.
func (f *FormField) ValidateValue(value string) error {
	switch f.Type {
	case FieldTypeText, FieldTypeTextarea, FieldTypeCheckbox:
		return nil
	case FieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("value %q is not numeric", value)
		}
		return nil
	case FieldTypeEmail:
		if _, err := mail.ParseAddress(value); err != nil {
			return fmt.Errorf("value %q is not a valid email address", value)
		}
		return nil
	case FieldTypePhone:
		if err := phone.Validate(value); err != nil {
			return fmt.Errorf("value %q is not a valid phone number", value)
		}
		return nil
	case FieldTypeDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("value %q is not a date (YYYY-MM-DD)", value)
		}
		return nil
	case FieldTypeTime:
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("value %q is not a time (HH:MM)", value)
		}
		return nil
	case FieldTypeSelect, FieldTypeRadio:
		return f.requireOption(value)
	case FieldTypeMultiselect:
		// Multi-value answers arrive pre-serialized as a JSON list; a bare
		// string is treated as a single selection.
		var selections []string
		if err := json.Unmarshal([]byte(value), &selections); err != nil {
			selections = []string{value}
		}
		for _, sel := range selections {
			if err := f.requireOption(sel); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unhandled field type %q", string(f.Type))
}

func (f *FormField) requireOption(value string) error {
	opts := f.OptionList()
	if len(opts) == 0 {
		return nil
	}
	for _, opt := range opts {
		if opt == value {
			return nil
		}
	}
	return fmt.Errorf("value %q is not one of the configured options", value)
}
