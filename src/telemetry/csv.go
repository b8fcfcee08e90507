package telemetry

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// LoadCSV opens path and reads it with ReadCSV. The file is closed before returning.
func LoadCSV(path string, required []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open telemetry csv")
	}
	defer f.Close()

	t, err := ReadCSV(f, required)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return t, nil
}

// ReadCSV parses a header row followed by data rows. Every name in required
// must appear in the header; all missing names are reported together.
// Cells are kept as text until a column is read with Table.Float.
func ReadCSV(r io.Reader, required []string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("failed to read header: file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := NewTable(header)
	if err := checkRequired(t, required); err != nil {
		return nil, err
	}
	if len(t.cols) != len(header) {
		return nil, errors.New("failed to parse header: duplicate column names")
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", t.Len()+1)
		}
		if err := t.AppendRow(record); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func checkRequired(t *Table, required []string) error {
	var result *multierror.Error
	for _, col := range required {
		if !t.Has(col) {
			result = multierror.Append(result, &MissingColumnError{Column: col})
		}
	}
	return result.ErrorOrNil()
}
