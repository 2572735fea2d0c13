package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldType(t *testing.T) {
	ft, err := ParseFieldType("text")
	require.NoError(t, err)
	assert.Equal(t, FieldTypeText, ft)

	ft, err = ParseFieldType("  Email ")
	require.NoError(t, err)
	assert.Equal(t, FieldTypeEmail, ft)

	_, err = ParseFieldType("DROPDOWN")
	assert.Error(t, err)
}

func TestInputWidget_CoversAllTypes(t *testing.T) {
	for _, ft := range AllFieldTypes {
		assert.NotPanics(t, func() {
			assert.NotEmpty(t, ft.InputWidget())
		}, "type %s", ft)
	}
}

func optionsField(t FieldType, options string) *FormField {
	f := &FormField{Type: t}
	if options != "" {
		f.Options = EncodeOptions(options)
	}
	return f
}

func TestValidateValue_Number(t *testing.T) {
	f := &FormField{Type: FieldTypeNumber}
	assert.NoError(t, f.ValidateValue("42"))
	assert.NoError(t, f.ValidateValue("3.14"))
	assert.Error(t, f.ValidateValue("zweiundvierzig"))
}

func TestValidateValue_Email(t *testing.T) {
	f := &FormField{Type: FieldTypeEmail}
	assert.NoError(t, f.ValidateValue("max@example.com"))
	assert.Error(t, f.ValidateValue("max@"))
}

func TestValidateValue_Phone(t *testing.T) {
	f := &FormField{Type: FieldTypePhone}
	assert.NoError(t, f.ValidateValue("+41 79 123 45 67"))
	assert.NoError(t, f.ValidateValue("079 123 45 67"))
	assert.Error(t, f.ValidateValue("nicht-eine-nummer"))
}

func TestValidateValue_DateAndTime(t *testing.T) {
	d := &FormField{Type: FieldTypeDate}
	assert.NoError(t, d.ValidateValue("2025-09-15"))
	assert.Error(t, d.ValidateValue("15.09.2025"))

	tm := &FormField{Type: FieldTypeTime}
	assert.NoError(t, tm.ValidateValue("14:30"))
	assert.Error(t, tm.ValidateValue("14:30:00"))
}

func TestValidateValue_SelectRequiresConfiguredOption(t *testing.T) {
	f := optionsField(FieldTypeSelect, "Produkt A,Produkt B")
	assert.NoError(t, f.ValidateValue("Produkt A"))
	assert.Error(t, f.ValidateValue("Produkt C"))

	// A select without configured options accepts anything.
	open := optionsField(FieldTypeSelect, "")
	assert.NoError(t, open.ValidateValue("egal"))
}

func TestValidateValue_Multiselect(t *testing.T) {
	f := optionsField(FieldTypeMultiselect, "A,B,C")

	assert.NoError(t, f.ValidateValue(`["A","C"]`))
	assert.Error(t, f.ValidateValue(`["A","X"]`))

	// A bare string counts as a single selection.
	assert.NoError(t, f.ValidateValue("B"))
	assert.Error(t, f.ValidateValue("X"))
}

func TestValidateValue_FreeTextAlwaysPasses(t *testing.T) {
	for _, ft := range []FieldType{FieldTypeText, FieldTypeTextarea, FieldTypeCheckbox} {
		f := &FormField{Type: ft}
		assert.NoError(t, f.ValidateValue("beliebiger Inhalt"), "type %s", ft)
	}
}
