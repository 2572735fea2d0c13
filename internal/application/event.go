package application

import (
	"errors"
	"time"

	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/leadradar/leadradar-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventService struct {
	Repos *repository.Repos
}

func NewEventService(repos *repository.Repos) *EventService {
	return &EventService{Repos: repos}
}

func (s *EventService) ListEvents(accountID uint) ([]event.Event, error) {
	return s.Repos.Event.ListEventsByAccount(accountID)
}

// GetEvent enforces the tenant boundary: an event of another account is
// indistinguishable from a missing one.
func (s *EventService) GetEvent(accountID, id uint) (event.Event, error) {
	e, err := s.Repos.Event.GetEventByID(id)
	if err != nil {
		return event.Event{}, err
	}
	if e.AccountID != accountID {
		return event.Event{}, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (s *EventService) CreateEvent(accountID uint, input event.CreateEventInput) (*event.Event, error) {
	start, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		return nil, err
	}

	e := &event.Event{
		AccountID: accountID,
		Name:      input.Name,
		Location:  input.Location,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}
	return e, s.Repos.Event.CreateEvent(e)
}

func (s *EventService) UpdateEvent(accountID, id uint, input event.UpdateEventInput) (*event.Event, error) {
	e, err := s.GetEvent(accountID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Location != nil {
		e.Location = input.Location
	}
	if input.StartDate != nil {
		start, err := parseDate(*input.StartDate)
		if err != nil {
			return nil, err
		}
		e.StartDate = start
	}
	if input.EndDate != nil {
		end, err := parseDate(*input.EndDate)
		if err != nil {
			return nil, err
		}
		e.EndDate = end
	}
	if input.IsActive != nil {
		e.IsActive = *input.IsActive
	}

	return &e, s.Repos.Event.SaveEvent(&e)
}

func parseDate(raw string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return datatypes.Date{}, errors.New("date must be YYYY-MM-DD")
	}
	return datatypes.Date(t), nil
}
