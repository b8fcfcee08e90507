package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds the range and mean of one numeric column.
type ColumnSummary struct {
	Column string
	Min    float64
	Mean   float64
	Max    float64
}

func (s ColumnSummary) String() string {
	return fmt.Sprintf("%-14s min=%10.2f mean=%10.2f max=%10.2f", s.Column, s.Min, s.Mean, s.Max)
}

// Summarize computes min/mean/max for each named column, in the given order.
func Summarize(t *Table, columns []string) ([]ColumnSummary, error) {
	if t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	out := make([]ColumnSummary, 0, len(columns))
	for _, col := range columns {
		values, err := t.Float(col)
		if err != nil {
			return nil, err
		}
		out = append(out, ColumnSummary{
			Column: col,
			Min:    floats.Min(values),
			Mean:   stat.Mean(values, nil),
			Max:    floats.Max(values),
		})
	}
	return out, nil
}
