package director

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// reportHeader is the fixed export header; downstream tooling matches
// on it byte for byte.
var reportHeader = []string{"First name", "Last name", "Date", "Worked time", "Name project", "Description"}

// BuildCSV renders the report semicolon-delimited with CRLF line ends.
func BuildCSV(rows []ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = true

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.FirstName,
			r.LastName,
			r.Date,
			strconv.Itoa(r.WorkedTime),
			r.ProjectName,
			r.Description,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildXLSX renders the report as a single-sheet workbook with the same
// columns as the CSV export.
func BuildXLSX(rows []ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]any, len(reportHeader))
	for i, h := range reportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{r.FirstName, r.LastName, r.Date, r.WorkedTime, r.ProjectName, r.Description}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
