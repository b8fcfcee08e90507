package telemetry

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column is one named series of cells. It starts as text, as read from the CSV,
// and becomes numeric the first time it is read with Table.Float.
type Column struct {
	Name    string
	text    []string
	num     []float64
	numeric bool
}

// IsNumeric reports whether the column has been coerced to float64.
func (c *Column) IsNumeric() bool { return c.numeric }

// Table is an ordered set of equally long columns. Row order is sample order.
type Table struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// NewTable creates an empty table with the given column names in order.
// Duplicate names keep the first occurrence.
func NewTable(names []string) *Table {
	t := &Table{index: make(map[string]int, len(names))}
	for _, n := range names {
		if _, dup := t.index[n]; dup {
			continue
		}
		t.index[n] = len(t.cols)
		t.cols = append(t.cols, &Column{Name: n})
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &MissingColumnError{Column: name}
	}
	return t.cols[i], nil
}

// AppendRow adds one text row. The record must have one cell per column.
func (t *Table) AppendRow(record []string) error {
	if len(record) != len(t.cols) {
		return errors.Errorf("row %d: expected %d fields, got %d", t.rows+1, len(t.cols), len(record))
	}
	for i, c := range t.cols {
		if c.numeric {
			return errors.Errorf("column %q is numeric; rows can only be appended while ingesting", c.Name)
		}
		c.text = append(c.text, record[i])
	}
	t.rows++
	return nil
}

// Text returns the cells of a text column. Numeric columns are formatted back
// to their shortest decimal representation.
func (t *Table) Text(name string) ([]string, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if !c.numeric {
		return c.text, nil
	}
	out := make([]string, len(c.num))
	for i, v := range c.num {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out, nil
}

// Float returns the numeric cells of a column, coercing a text column in place
// on first access. The returned slice is the table's storage.
func (t *Table) Float(name string) ([]float64, error) {
	c, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if c.numeric {
		return c.num, nil
	}
	num := make([]float64, len(c.text))
	for i, s := range c.text {
		v, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr != nil {
			return nil, &ParseError{Column: name, Row: i + 1, Value: s, Err: perr}
		}
		num[i] = v
	}
	c.num, c.text, c.numeric = num, nil, true
	return c.num, nil
}

// SetFloat adds a numeric column, or replaces an existing one in place.
func (t *Table) SetFloat(name string, values []float64) error {
	if len(values) != t.rows {
		return errors.Errorf("column %q: expected %d values, got %d", name, t.rows, len(values))
	}
	if i, ok := t.index[name]; ok {
		t.cols[i] = &Column{Name: name, num: values, numeric: true}
		return nil
	}
	t.index[name] = len(t.cols)
	t.cols = append(t.cols, &Column{Name: name, num: values, numeric: true})
	return nil
}

// Replace substitutes every cell equal to from with to in a text column and
// returns the number of cells changed. Numeric columns are left alone.
func (t *Table) Replace(name, from, to string) (int, error) {
	c, err := t.column(name)
	if err != nil {
		return 0, err
	}
	if c.numeric {
		return 0, nil
	}
	n := 0
	for i, s := range c.text {
		if strings.TrimSpace(s) == from {
			c.text[i] = to
			n++
		}
	}
	return n, nil
}

// Drop removes the named columns. Names not in the table are ignored.
// It returns the names that were actually removed.
func (t *Table) Drop(names ...string) []string {
	remove := make(map[string]bool, len(names))
	var dropped []string
	for _, n := range names {
		if t.Has(n) && !remove[n] {
			remove[n] = true
			dropped = append(dropped, n)
		}
	}
	if len(dropped) == 0 {
		return nil
	}
	kept := t.cols[:0]
	for _, c := range t.cols {
		if !remove[c.Name] {
			kept = append(kept, c)
		}
	}
	t.cols = kept
	t.index = make(map[string]int, len(kept))
	for i, c := range kept {
		t.index[c.Name] = i
	}
	return dropped
}
