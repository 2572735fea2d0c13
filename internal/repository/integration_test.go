package repository_test

import (
	"errors"
	"os"
	"testing"

	"github.com/leadradar/leadradar-api/internal/domain/account"
	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a real Postgres (container or TEST_DB_DSN) and are
// opt-in via TEST_INTEGRATION=1.
func setupIntegration(t *testing.T) *repository.Repos {
	t.Helper()
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("set TEST_INTEGRATION=1 to run Postgres integration tests")
	}

	conn, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)
	return repository.NewRepositories(conn)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	repos := setupIntegration(t)

	acc := &account.Account{Name: "Tx AG"}
	require.NoError(t, repos.User.CreateAccount(acc))

	f := &form.Form{AccountID: acc.ID, Name: "Tx Formular", IsActive: true}
	require.NoError(t, repos.Form.CreateForm(f))

	sentinel := errors.New("boom")
	err := repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.FormField.CreateField(&form.FormField{FormID: f.ID, Type: form.FieldTypeText, Label: "A", Order: 1}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	fields, err := repos.FormField.ListFieldsByForm(f.ID)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestMaxOrder_EmptyFormIsZero(t *testing.T) {
	repos := setupIntegration(t)

	acc := &account.Account{Name: "Order AG"}
	require.NoError(t, repos.User.CreateAccount(acc))

	f := &form.Form{AccountID: acc.ID, Name: "Leeres Formular", IsActive: true}
	require.NoError(t, repos.Form.CreateForm(f))

	max, err := repos.FormField.MaxOrder(f.ID)
	require.NoError(t, err)
	assert.Zero(t, max)

	require.NoError(t, repos.FormField.CreateField(&form.FormField{FormID: f.ID, Type: form.FieldTypeText, Label: "A", Order: 3}))

	max, err = repos.FormField.MaxOrder(f.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, max)
}
