package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset is an ordered table of rendered timetable cells. Rows arrive in
// working-day walk order and renderers must not reorder them.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// CSVExporter renders a timetable Dataset into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the dataset. Short rows are padded
// to the header width so a day with sparse cells still lines up.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := row
		if len(row) != len(data.Headers) {
			record = make([]string, len(data.Headers))
			copy(record, row)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
