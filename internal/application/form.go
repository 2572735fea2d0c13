package application

import (
	"strings"

	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gorm.io/gorm"
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

func (s *FormService) ListForms(accountID uint) ([]form.Form, error) {
	return s.Repos.Form.ListFormsByAccount(accountID)
}

// GetForm returns the form with its fields sorted by order ascending.
// Cross-account ids read as not found.
func (s *FormService) GetForm(accountID, id uint) (form.Form, error) {
	f, err := s.Repos.Form.GetFormWithFields(id)
	if err != nil {
		return form.Form{}, err
	}
	if f.AccountID != accountID {
		return form.Form{}, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (s *FormService) CreateForm(accountID uint, input form.CreateFormInput) (*form.Form, error) {
	name := strings.TrimSpace(input.Name)

	var description *string
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		if d != "" {
			description = &d
		}
	}

	if input.EventID != nil {
		// The referenced event must live in the same account.
		e, err := s.Repos.Event.GetEventByID(*input.EventID)
		if err != nil {
			return nil, err
		}
		if e.AccountID != accountID {
			return nil, gorm.ErrRecordNotFound
		}
	}

	f := &form.Form{
		AccountID:   accountID,
		EventID:     input.EventID,
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	return f, s.Repos.Form.CreateForm(f)
}

func (s *FormService) UpdateForm(accountID, id uint, input form.UpdateFormInput) (*form.Form, error) {
	f, err := s.Repos.Form.GetFormByID(id)
	if err != nil {
		return nil, err
	}
	if f.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}

	if input.Name != nil {
		f.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		f.Description = input.Description
	}
	if input.EventID != nil {
		f.EventID = input.EventID
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}

	return &f, s.Repos.Form.SaveForm(&f)
}
