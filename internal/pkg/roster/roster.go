// Package roster reads and writes the share-list workbook format used by the
// bulk-import flow: one sheet with an `Email` column and a `權限` (role)
// column.
package roster

import (
	"bytes"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"notebook-share-be/internal/pkg/serverutils"
)

const (
	HeaderEmail = "Email"
	HeaderRole  = "權限"

	DefaultRole = "Viewer"

	exampleEmail = "user@example.com"
)

type Row struct {
	Email string
	Role  string
}

// Parse extracts import rows from an uploaded workbook. Rows with a blank
// email are dropped here, before they ever reach the import; a blank or
// missing role column defaults to Viewer. Only the email column is required.
func Parse(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, serverutils.NewBadRequest("could not read workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, serverutils.NewBadRequest("could not read worksheet")
	}
	if len(rows) == 0 {
		return nil, serverutils.NewBadRequest("workbook is empty")
	}

	emailCol, roleCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case HeaderEmail:
			emailCol = i
		case HeaderRole:
			roleCol = i
		}
	}
	if emailCol < 0 {
		return nil, serverutils.NewBadRequest("workbook must contain an '" + HeaderEmail + "' column")
	}

	result := make([]Row, 0, len(rows)-1)
	for _, row := range rows[1:] {
		email := ""
		if emailCol < len(row) {
			email = strings.TrimSpace(row[emailCol])
		}
		if email == "" {
			continue
		}
		role := ""
		if roleCol >= 0 && roleCol < len(row) {
			role = strings.TrimSpace(row[roleCol])
		}
		if role == "" {
			role = DefaultRole
		}
		result = append(result, Row{Email: email, Role: role})
	}
	return result, nil
}

// Template builds the downloadable workbook with the exact headers the
// import expects and one example row.
func Template() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", HeaderEmail); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "B1", HeaderRole); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", exampleEmail); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "B2", DefaultRole); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}
