package application

import (
	"strings"

	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gorm.io/gorm"
)

// FieldService owns the ordered-field maintenance of a form. Every multi-row
// mutation (reorder swap, duplicate shift+insert, delete cascade) runs in a
// single transaction so a partial renumbering is never observable.
type FieldService struct {
	Repos *repository.Repos
}

func NewFieldService(repos *repository.Repos) *FieldService {
	return &FieldService{Repos: repos}
}

// ownedField resolves a field and checks the full ownership chain:
// field -> form -> account. Any break reads as not found.
func (s *FieldService) ownedField(accountID, fieldID, formID uint) (form.FormField, error) {
	f, err := s.Repos.FormField.GetFieldByID(fieldID)
	if err != nil {
		return form.FormField{}, err
	}
	if f.FormID != formID {
		return form.FormField{}, gorm.ErrRecordNotFound
	}

	owner, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return form.FormField{}, err
	}
	if owner.AccountID != accountID {
		return form.FormField{}, gorm.ErrRecordNotFound
	}
	return f, nil
}

// AddField appends or inserts a field. When no order is supplied the field
// goes to the end of the sequence (max order + 1, or 1 for the first field).
func (s *FieldService) AddField(accountID uint, input form.AddFieldInput) (*form.FormField, error) {
	owner, err := s.Repos.Form.GetFormByID(input.FormID)
	if err != nil {
		return nil, err
	}
	if owner.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}

	fieldType, err := form.ParseFieldType(input.Type)
	if err != nil {
		return nil, err
	}

	order := input.Order
	if order <= 0 {
		max, err := s.Repos.FormField.MaxOrder(input.FormID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}

	var placeholder *string
	if p := strings.TrimSpace(input.Placeholder); p != "" {
		placeholder = &p
	}

	var options *string
	if strings.TrimSpace(input.Options) != "" {
		options = form.EncodeOptions(input.Options)
	}

	field := &form.FormField{
		FormID:      input.FormID,
		Type:        fieldType,
		Label:       input.Label,
		Required:    input.Required == "on" || input.Required == "true",
		Order:       order,
		Placeholder: placeholder,
		Options:     options,
	}
	return field, s.Repos.FormField.CreateField(field)
}

// UpdateField overwrites the listed attributes in place. The field's order
// and its siblings are never touched here.
func (s *FieldService) UpdateField(accountID, fieldID, formID uint, input form.UpdateFieldInput) (*form.FormField, error) {
	field, err := s.ownedField(accountID, fieldID, formID)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		field.Label = *input.Label
	}
	if input.Type != nil {
		fieldType, err := form.ParseFieldType(*input.Type)
		if err != nil {
			return nil, err
		}
		field.Type = fieldType
	}
	if input.Required != nil {
		field.Required = *input.Required
	}
	if input.Placeholder != nil {
		if p := strings.TrimSpace(*input.Placeholder); p != "" {
			field.Placeholder = &p
		} else {
			field.Placeholder = nil
		}
	}
	if input.Options != nil {
		field.Options = form.EncodeOptions(*input.Options)
	}

	return &field, s.Repos.FormField.SaveField(&field)
}

// DeleteField removes the field together with its dependent lead answers in
// one transaction. Surviving fields keep their order values.
func (s *FieldService) DeleteField(accountID uint, input form.DeleteFieldInput) error {
	field, err := s.ownedField(accountID, input.FieldID, input.FormID)
	if err != nil {
		return err
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Lead.DeleteValuesByField(field.ID); err != nil {
			return err
		}
		return tx.FormField.DeleteField(field.ID)
	})
}

// ReorderField swaps the field's order with its neighbor in the requested
// direction. A field already at the edge is a successful no-op.
func (s *FieldService) ReorderField(accountID uint, input form.ReorderFieldInput) error {
	if input.Direction != "up" && input.Direction != "down" {
		return ErrInvalidDirection
	}

	field, err := s.ownedField(accountID, input.FieldID, input.FormID)
	if err != nil {
		return err
	}

	fields, err := s.Repos.FormField.ListFieldsByForm(input.FormID)
	if err != nil {
		return err
	}

	index := -1
	for i, f := range fields {
		if f.ID == field.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return gorm.ErrRecordNotFound
	}

	neighborIndex := -1
	if input.Direction == "up" && index > 0 {
		neighborIndex = index - 1
	} else if input.Direction == "down" && index < len(fields)-1 {
		neighborIndex = index + 1
	}
	if neighborIndex == -1 {
		return nil
	}

	neighbor := fields[neighborIndex]

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.FormField.UpdateOrder(field.ID, neighbor.Order); err != nil {
			return err
		}
		return tx.FormField.UpdateOrder(neighbor.ID, field.Order)
	})
}

// DuplicateField inserts a copy directly after the original: every field at
// order >= original+1 is shifted up by one and the copy takes the freed slot.
func (s *FieldService) DuplicateField(accountID uint, input form.DuplicateFieldInput) (*form.FormField, error) {
	original, err := s.ownedField(accountID, input.FieldID, input.FormID)
	if err != nil {
		return nil, err
	}

	fields, err := s.Repos.FormField.ListFieldsByForm(input.FormID)
	if err != nil {
		return nil, err
	}

	newOrder := original.Order + 1

	duplicate := &form.FormField{
		FormID:      original.FormID,
		Type:        original.Type,
		Label:       original.Label + " (Kopie)",
		Required:    original.Required,
		Order:       newOrder,
		Placeholder: original.Placeholder,
		Options:     original.Options,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		// Shift from the back so no two rows ever hold the same order.
		for i := len(fields) - 1; i >= 0; i-- {
			if fields[i].Order >= newOrder {
				if err := tx.FormField.UpdateOrder(fields[i].ID, fields[i].Order+1); err != nil {
					return err
				}
			}
		}
		return tx.FormField.CreateField(duplicate)
	})
	if err != nil {
		return nil, err
	}
	return duplicate, nil
}
