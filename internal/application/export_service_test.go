package application

import (
	"strings"
	"testing"

	"github.com/leadradar/leadradar-api/internal/domain/form"
	"github.com/leadradar/leadradar-api/internal/domain/lead"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func setupExportService(t *testing.T) (*ExportService, *LeadService, uint, uint, *form.FormField, *form.FormField) {
	repos := newTestRepos(t)
	acc := seedAccount(t, repos, "Acme AG")
	f := seedForm(t, repos, acc.ID, "Messe Kontakte 2025")
	name := seedField(t, repos, f.ID, "Name", form.FieldTypeText, 1, false)
	notes := seedField(t, repos, f.ID, "Notizen", form.FieldTypeTextarea, 2, false)
	return NewExportService(repos, nil), NewLeadService(repos, nil), acc.ID, f.ID, name, notes
}

// --------------------- EscapeCSVField ---------------------

func TestEscapeCSVField(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"has;semicolon", `"has;semicolon"`},
		{"has,comma", `"has,comma"`},
		{"has\nnewline", "\"has\nnewline\""},
		{`has"quote`, `"has""quote"`},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeCSVField(tc.in), "input %q", tc.in)
	}
}

// --------------------- BuildTable ---------------------

func TestBuildTable_ColumnsFollowFieldOrder(t *testing.T) {
	svc, leads, accountID, formID, name, notes := setupExportService(t)

	_, err := leads.SubmitLead(lead.SubmitInput{
		FormID: formID,
		Values: map[uint]string{name.ID: "Max", notes.ID: "Standbesuch"},
	})
	require.NoError(t, err)

	table, err := svc.BuildTable(accountID, formID)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lead-ID", "Erstellt am", "Status", "Name", "Notizen"}, table.Header)
	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "NEW", row[2])
	assert.Equal(t, "Max", row[3])
	assert.Equal(t, "Standbesuch", row[4])
}

func TestBuildTable_MissingAnswerIsEmptyCell(t *testing.T) {
	svc, leads, accountID, formID, name, _ := setupExportService(t)

	_, err := leads.SubmitLead(lead.SubmitInput{
		FormID: formID,
		Values: map[uint]string{name.ID: "Max"},
	})
	require.NoError(t, err)

	table, err := svc.BuildTable(accountID, formID)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0][4])
}

func TestBuildTable_FilenameSlug(t *testing.T) {
	svc, _, accountID, formID, _, _ := setupExportService(t)

	table, err := svc.BuildTable(accountID, formID)
	require.NoError(t, err)
	assert.Contains(t, table.Filename, "messe-kontakte-2025")
	assert.True(t, strings.HasSuffix(table.Filename, "-leads"))
}

func TestBuildTable_ForeignAccount(t *testing.T) {
	svc, _, _, formID, _, _ := setupExportService(t)

	_, err := svc.BuildTable(999, formID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// --------------------- ExportCSV ---------------------

func TestExportCSV_DialectAndRowOrder(t *testing.T) {
	svc, leads, accountID, formID, name, notes := setupExportService(t)

	_, err := leads.SubmitLead(lead.SubmitInput{
		FormID: formID,
		Values: map[uint]string{name.ID: "Max; Muster", notes.ID: "ohne Sonderzeichen"},
	})
	require.NoError(t, err)

	filename, data, err := svc.ExportCSV(accountID, formID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(string(data), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Lead-ID;Erstellt am;Status;Name;Notizen", lines[0])
	assert.Contains(t, lines[1], `"Max; Muster"`)
	assert.Contains(t, lines[1], ";ohne Sonderzeichen")
}

func TestExportCSV_EmptyForm(t *testing.T) {
	svc, _, accountID, formID, _, _ := setupExportService(t)

	_, data, err := svc.ExportCSV(accountID, formID)
	require.NoError(t, err)
	assert.Equal(t, "Lead-ID;Erstellt am;Status;Name;Notizen", string(data))
}

// --------------------- ExportXLSX ---------------------

func TestExportXLSX_RoundTrips(t *testing.T) {
	svc, leads, accountID, formID, name, _ := setupExportService(t)

	_, err := leads.SubmitLead(lead.SubmitInput{
		FormID: formID,
		Values: map[uint]string{name.ID: "Max"},
	})
	require.NoError(t, err)

	filename, data, err := svc.ExportXLSX(accountID, formID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	wb, err := excelize.OpenReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Lead-ID", "Erstellt am", "Status", "Name", "Notizen"}, rows[0])
	assert.Equal(t, "Max", rows[1][3])
}
