package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format is the encoding of a tabular resource.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned when a resource cannot be decoded.
var ErrUnsupportedFormat = errors.New("unsupported format")

// DetectFormat guesses the format from the resource location. Query strings
// are ignored and anything that is not a workbook is read as CSV.
func DetectFormat(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	if strings.EqualFold(path.Ext(p), ".xlsx") {
		return XLSX
	}
	return CSV
}

// Decode reads every row of r in the given format.
func Decode(f Format, r io.Reader) ([][]string, error) {
	switch f {
	case CSV:
		return DecodeCSV(r)
	case XLSX:
		return DecodeXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// DecodeCSV reads comma separated rows. Rows may differ in length.
func DecodeCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}
	return rows, nil
}

// DecodeXLSX reads the rows of the first sheet of a workbook.
func DecodeXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("decode xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("decode xlsx: workbook has no sheet")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("decode xlsx sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}
