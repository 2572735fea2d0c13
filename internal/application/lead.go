package application

import (
	"fmt"
	"strings"

	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gorm.io/gorm"
)

type LeadService struct {
	Repos *repository.Repos
	feed  *LeadFeed
}

func NewLeadService(repos *repository.Repos, feed *LeadFeed) *LeadService {
	return &LeadService{Repos: repos, feed: feed}
}

// FieldValuesFromSubmission picks the field_<id> entries out of a raw form
// payload. Unknown keys are ignored; values are trimmed and blank answers
// dropped.
func FieldValuesFromSubmission(raw map[string][]string) map[uint]string {
	values := make(map[uint]string)
	for key, vals := range raw {
		if !strings.HasPrefix(key, "field_") {
			continue
		}
		idPart := strings.TrimPrefix(key, "field_")
		var fieldID uint
		if _, err := fmt.Sscanf(idPart, "%d", &fieldID); err != nil || fieldID == 0 {
			continue
		}
		if len(vals) == 0 {
			continue
		}
		trimmed := strings.TrimSpace(vals[0])
		if trimmed == "" {
			continue
		}
		values[fieldID] = trimmed
	}
	return values
}

// SubmitLead validates a submission against the form's field definitions and
// persists the lead with all of its answers in one transaction. The lead's
// account is always the form's account.
func (s *LeadService) SubmitLead(input lead.SubmitInput) (*lead.Lead, error) {
	f, err := s.Repos.Form.GetFormWithFields(input.FormID)
	if err != nil {
		return nil, err
	}

	fieldsByID := make(map[uint]form.FormField, len(f.Fields))
	for _, fld := range f.Fields {
		fieldsByID[fld.ID] = fld
	}

	// Answers for fields of other forms are discarded, not errors: stale
	// capture pages may still post removed fields.
	accepted := make([]lead.LeadFieldValue, 0, len(input.Values))
	for fieldID, value := range input.Values {
		fld, ok := fieldsByID[fieldID]
		if !ok {
			continue
		}
		if err := fld.ValidateValue(value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFieldValue, fld.Label, err)
		}
		accepted = append(accepted, lead.LeadFieldValue{FieldID: fieldID, Value: value})
	}

	for _, fld := range f.Fields {
		if fld.Required {
			if _, ok := input.Values[fld.ID]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrRequiredField, fld.Label)
			}
		}
	}

	newLead := &lead.Lead{
		AccountID:       f.AccountID,
		FormID:          f.ID,
		EventID:         f.EventID,
		CreatedByUserID: input.CreatedByUserID,
		Status:          lead.StatusNew,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Lead.CreateLead(newLead); err != nil {
			return err
		}
		for i := range accepted {
			accepted[i].LeadID = newLead.ID
		}
		return tx.Lead.CreateValues(accepted)
	})
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Publish(LeadEvent{
			LeadID:    newLead.ID,
			FormID:    f.ID,
			AccountID: f.AccountID,
			FormName:  f.Name,
			CreatedAt: newLead.CreatedAt,
		})
	}

	return newLead, nil
}

// UpdateStatus normalizes the wire status (case-insensitive) and stores the
// canonical uppercase value. Unknown values leave the lead untouched.
func (s *LeadService) UpdateStatus(accountID uint, input lead.StatusUpdateInput) (*lead.Lead, error) {
	status, err := lead.ParseStatus(input.Status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	l, err := s.Repos.Lead.GetLeadByID(input.LeadID)
	if err != nil {
		return nil, err
	}
	if accountID != 0 && l.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}

	l.Status = status
	if input.Notes != nil {
		l.Notes = input.Notes
	}

	return &l, s.Repos.Lead.SaveLead(&l)
}

// ListLeads returns a form's leads oldest first, answers included.
func (s *LeadService) ListLeads(accountID, formID uint) ([]lead.Lead, error) {
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		return nil, err
	}
	if f.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.Repos.Lead.ListLeadsByForm(formID)
}

func (s *LeadService) GetLead(accountID, id uint) (lead.Lead, error) {
	l, err := s.Repos.Lead.GetLeadByID(id)
	if err != nil {
		return lead.Lead{}, err
	}
	if l.AccountID != accountID {
		return lead.Lead{}, gorm.ErrRecordNotFound
	}
	return l, nil
}
