package application

import (
	"testing"
	"time"

	"github.com/leadradar/leadradar-api/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateEvent_ParsesDates(t *testing.T) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	svc := NewEventService(repos)

	e, err := svc.CreateEvent(acc.ID, event.CreateEventInput{
		Name:      "Demo Messe 2025",
		StartDate: "2025-09-15",
		EndDate:   "2025-09-18",
	})
	require.NoError(t, err)
	assert.True(t, e.IsActive)
	assert.Equal(t, "2025-09-15", time.Time(e.StartDate).Format("2006-01-02"))
}

func TestCreateEvent_RejectsBadDate(t *testing.T) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	svc := NewEventService(repos)

	_, err := svc.CreateEvent(acc.ID, event.CreateEventInput{
		Name:      "Demo Messe",
		StartDate: "15.09.2025",
		EndDate:   "2025-09-18",
	})
	assert.Error(t, err)
}

func TestGetEvent_ForeignAccount(t *testing.T) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	svc := NewEventService(repos)

	e, err := svc.CreateEvent(acc.ID, event.CreateEventInput{
		Name:      "Demo Messe",
		StartDate: "2025-09-15",
		EndDate:   "2025-09-18",
	})
	require.NoError(t, err)

	_, err = svc.GetEvent(999, e.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateEvent_PartialFields(t *testing.T) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	svc := NewEventService(repos)

	e, err := svc.CreateEvent(acc.ID, event.CreateEventInput{
		Name:      "Demo Messe",
		StartDate: "2025-09-15",
		EndDate:   "2025-09-18",
	})
	require.NoError(t, err)

	name := "Demo Messe 2025"
	inactive := false
	updated, err := svc.UpdateEvent(acc.ID, e.ID, event.UpdateEventInput{Name: &name, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Demo Messe 2025", updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "2025-09-15", time.Time(updated.StartDate).Format("2006-01-02"))
}
