package application

import (
	"testing"

	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupFieldService(t *testing.T) (*FieldService, *LeadService, uint, uint) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	f := seedForm(t, repos, acc.ID, "Messeformular")
	return NewFieldService(repos), NewLeadService(repos, nil), acc.ID, f.ID
}

// --------------------- AddField ---------------------

func TestAddField_AppendsAtEnd(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	first, err := svc.AddField(accountID, form.AddFieldInput{FormID: formID, Label: "Vorname", Type: "TEXT"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order)

	second, err := svc.AddField(accountID, form.AddFieldInput{FormID: formID, Label: "Nachname", Type: "text"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Order)
	assert.Equal(t, form.FieldTypeText, second.Type)
}

func TestAddField_RequiredCheckbox(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	fld, err := svc.AddField(accountID, form.AddFieldInput{FormID: formID, Label: "E-Mail", Type: "EMAIL", Required: "on"})
	require.NoError(t, err)
	assert.True(t, fld.Required)

	fld, err = svc.AddField(accountID, form.AddFieldInput{FormID: formID, Label: "Telefon", Type: "PHONE"})
	require.NoError(t, err)
	assert.False(t, fld.Required)
}

func TestAddField_EncodesOptions(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	fld, err := svc.AddField(accountID, form.AddFieldInput{
		FormID:  formID,
		Label:   "Interesse",
		Type:    "SELECT",
		Options: "Produkt A, Produkt B , ,Beratung",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Produkt A", "Produkt B", "Beratung"}, fld.OptionList())
}

func TestAddField_UnknownType(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	_, err := svc.AddField(accountID, form.AddFieldInput{FormID: formID, Label: "X", Type: "DROPDOWN"})
	assert.Error(t, err)
}

func TestAddField_ForeignAccount(t *testing.T) {
	svc, _, _, formID := setupFieldService(t)

	_, err := svc.AddField(999, form.AddFieldInput{FormID: formID, Label: "X", Type: "TEXT"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- ReorderField ---------------------

func TestReorderField_SwapsNeighbors(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)
	repos := svc.Repos

	seedField(t, repos, formID, "A", form.FieldTypeText, 1, false)
	b := seedField(t, repos, formID, "B", form.FieldTypeText, 2, false)
	seedField(t, repos, formID, "C", form.FieldTypeText, 3, false)

	err := svc.ReorderField(accountID, form.ReorderFieldInput{FieldID: b.ID, FormID: formID, Direction: "up"})
	require.NoError(t, err)

	orders := fieldOrders(t, repos, formID)
	assert.Equal(t, 2, orders["A"])
	assert.Equal(t, 1, orders["B"])
	assert.Equal(t, 3, orders["C"])
}

func TestReorderField_EdgeIsNoop(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)
	repos := svc.Repos

	a := seedField(t, repos, formID, "A", form.FieldTypeText, 1, false)
	seedField(t, repos, formID, "B", form.FieldTypeText, 2, false)

	require.NoError(t, svc.ReorderField(accountID, form.ReorderFieldInput{FieldID: a.ID, FormID: formID, Direction: "up"}))

	orders := fieldOrders(t, repos, formID)
	assert.Equal(t, 1, orders["A"])
	assert.Equal(t, 2, orders["B"])
}

func TestReorderField_InvalidDirection(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)
	a := seedField(t, svc.Repos, formID, "A", form.FieldTypeText, 1, false)

	err := svc.ReorderField(accountID, form.ReorderFieldInput{FieldID: a.ID, FormID: formID, Direction: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestReorderField_FieldOfOtherForm(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)
	repos := svc.Repos

	other := seedForm(t, repos, accountID, "Anderes Formular")
	stray := seedField(t, repos, other.ID, "Fremd", form.FieldTypeText, 1, false)

	err := svc.ReorderField(accountID, form.ReorderFieldInput{FieldID: stray.ID, FormID: formID, Direction: "up"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- DuplicateField ---------------------

func TestDuplicateField_InsertsDirectlyAfter(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)
	repos := svc.Repos

	a := seedField(t, repos, formID, "A", form.FieldTypeText, 1, false)
	seedField(t, repos, formID, "B", form.FieldTypeText, 2, false)
	seedField(t, repos, formID, "C", form.FieldTypeText, 3, false)

	dup, err := svc.DuplicateField(accountID, form.DuplicateFieldInput{FieldID: a.ID, FormID: formID})
	require.NoError(t, err)
	assert.Equal(t, "A (Kopie)", dup.Label)
	assert.Equal(t, 2, dup.Order)

	orders := fieldOrders(t, repos, formID)
	assert.Equal(t, 1, orders["A"])
	assert.Equal(t, 2, orders["A (Kopie)"])
	assert.Equal(t, 3, orders["B"])
	assert.Equal(t, 4, orders["C"])
}

func TestDuplicateField_CopiesAttributes(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	placeholder := "Produkt A"
	original := &form.FormField{
		FormID:      formID,
		Type:        form.FieldTypeSelect,
		Label:       "Interesse",
		Required:    true,
		Order:       1,
		Placeholder: &placeholder,
		Options:     form.EncodeOptions("Produkt A,Produkt B"),
	}
	require.NoError(t, svc.Repos.FormField.CreateField(original))

	dup, err := svc.DuplicateField(accountID, form.DuplicateFieldInput{FieldID: original.ID, FormID: formID})
	require.NoError(t, err)
	assert.Equal(t, form.FieldTypeSelect, dup.Type)
	assert.True(t, dup.Required)
	assert.Equal(t, placeholder, *dup.Placeholder)
	assert.Equal(t, []string{"Produkt A", "Produkt B"}, dup.OptionList())
}

// --------------------- DeleteField ---------------------

func TestDeleteField_CascadesLeadValues(t *testing.T) {
	svc, leads, accountID, formID := setupFieldService(t)
	repos := svc.Repos

	a := seedField(t, repos, formID, "A", form.FieldTypeText, 1, false)
	seedField(t, repos, formID, "B", form.FieldTypeText, 2, false)

	_, err := leads.SubmitLead(lead.SubmitInput{FormID: formID, Values: map[uint]string{a.ID: "hallo"}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteField(accountID, form.DeleteFieldInput{FieldID: a.ID, FormID: formID}))

	count, err := repos.Lead.CountValuesByField(a.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	orders := fieldOrders(t, repos, formID)
	assert.NotContains(t, orders, "A")
	// Surviving fields keep their order values.
	assert.Equal(t, 2, orders["B"])
}

// --------------------- UpdateField ---------------------

func TestUpdateField_NeverTouchesOrder(t *testing.T) {
	svc, _, accountID, formID := setupFieldService(t)

	fld := seedField(t, svc.Repos, formID, "A", form.FieldTypeText, 5, false)

	label := "Umbenannt"
	required := true
	updated, err := svc.UpdateField(accountID, fld.ID, formID, form.UpdateFieldInput{Label: &label, Required: &required})
	require.NoError(t, err)
	assert.Equal(t, "Umbenannt", updated.Label)
	assert.True(t, updated.Required)
	assert.Equal(t, 5, updated.Order)
}
