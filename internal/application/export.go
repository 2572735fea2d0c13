package application

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/leadradar/leadradar-api/internal/repository"
	"github.com/leadradar/leadradar-api/pkg/storage"
	"github.com/leadradar/leadradar-api/pkg/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService projects a form's leads into a flat table: three fixed
// columns (lead id, creation timestamp, status) followed by one column per
// form field in display order.
type ExportService struct {
	Repos   *repository.Repos
	archive *storage.Client
}

func NewExportService(repos *repository.Repos, archive *storage.Client) *ExportService {
	return &ExportService{Repos: repos, archive: archive}
}

// ExportTable is the format-independent projection.
type ExportTable struct {
	Filename string
	Header   []string
	Rows     [][]string
}

// BuildTable loads the form (fields sorted by order) and its leads (oldest
// first) and flattens them. A lead without an answer for a field gets an
// empty cell in that column.
func (s *ExportService) BuildTable(accountID, formID uint) (*ExportTable, error) {
	f, err := s.Repos.Form.GetFormWithFields(formID)
	if err != nil {
		return nil, err
	}
	if f.AccountID != accountID {
		return nil, gorm.ErrRecordNotFound
	}

	leads, err := s.Repos.Lead.ListLeadsByForm(formID)
	if err != nil {
		return nil, err
	}

	header := []string{"Lead-ID", "Erstellt am", "Status"}
	for _, fld := range f.Fields {
		header = append(header, fld.Label)
	}

	rows := make([][]string, 0, len(leads))
	for _, l := range leads {
		valuesByField := make(map[uint]string, len(l.Values))
		for _, v := range l.Values {
			valuesByField[v.FieldID] = v.Value
		}

		row := []string{
			fmt.Sprintf("%d", l.ID),
			l.CreatedAt.UTC().Format(time.RFC3339),
			string(l.Status),
		}
		for _, fld := range f.Fields {
			row = append(row, valuesByField[fld.ID])
		}
		rows = append(rows, row)
	}

	slug := utils.Slugify(f.Name, "leads")
	filename := fmt.Sprintf("%s-%d-leads", slug, f.ID)

	return &ExportTable{Filename: filename, Header: header, Rows: rows}, nil
}

// ExportCSV renders the projection with the export dialect: semicolon
// delimiter, CRLF rows, and a cell quoted iff it contains a semicolon,
// comma, newline or double-quote.
func (s *ExportService) ExportCSV(accountID, formID uint) (string, []byte, error) {
	table, err := s.BuildTable(accountID, formID)
	if err != nil {
		return "", nil, err
	}

	lines := make([]string, 0, len(table.Rows)+1)
	lines = append(lines, joinCSVRow(table.Header))
	for _, row := range table.Rows {
		lines = append(lines, joinCSVRow(row))
	}

	filename := table.Filename + ".csv"
	data := []byte(strings.Join(lines, "\r\n"))
	s.archiveAsync(filename, data, "text/csv; charset=utf-8")
	return filename, data, nil
}

// ExportXLSX renders the same projection as a single-sheet Excel workbook.
func (s *ExportService) ExportXLSX(accountID, formID uint) (string, []byte, error) {
	table, err := s.BuildTable(accountID, formID)
	if err != nil {
		return "", nil, err
	}

	wb := excelize.NewFile()
	defer wb.Close()

	sheet := "Leads"
	if err := wb.SetSheetName("Sheet1", sheet); err != nil {
		return "", nil, err
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return wb.SetSheetRow(sheet, cell, &cells)
	}

	if err := writeRow(1, table.Header); err != nil {
		return "", nil, err
	}
	for i, row := range table.Rows {
		if err := writeRow(i+2, row); err != nil {
			return "", nil, err
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return "", nil, err
	}

	filename := table.Filename + ".xlsx"
	data := buf.Bytes()
	s.archiveAsync(filename, data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return filename, data, nil
}

func (s *ExportService) archiveAsync(filename string, data []byte, contentType string) {
	if s.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.archive.PutExport(ctx, filename, data, contentType); err != nil {
			log.Printf("Failed to archive export %s: %v", filename, err)
		}
	}()
}

// EscapeCSVField quotes a cell iff it contains the semicolon delimiter, a
// comma, a newline or a double-quote; inner quotes are doubled. encoding/csv
// cannot express this dialect (it only quotes around its own delimiter).
func EscapeCSVField(value string) string {
	v := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(v, ";,\n\"") {
		return `"` + v + `"`
	}
	return v
}

func joinCSVRow(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = EscapeCSVField(v)
	}
	return strings.Join(escaped, ";")
}
