package httpapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rutvik18Verticals/ally-xs-api-sub007/internal/domain"

	"github.com/xuri/excelize/v2"
)

const registerSheet = "Status Registers"

// RegisterExportHeader columns of the status register export.
var RegisterExportHeader = []string{
	"Address",
	"Description",
	"Value",
	"State",
	"Units",
	"Measurement",
	"Order",
	"Source",
	"Last Update",
}

var registerColumnWidths = []float64{10, 32, 16, 14, 10, 18, 8, 14, 20}

// GenerateRegisterExport builds an .xlsx workbook with one row per record. A nil or
// empty slice produces the header only.
func GenerateRegisterExport(records []domain.RegisterData) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(registerSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range RegisterExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(registerSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(registerSheet, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(registerSheet, name, name, registerColumnWidths[col]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, rec := range records {
		row := i + 2
		for col, value := range registerRow(rec) {
			if value == nil || value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(registerSheet, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", row, col+1, err)
			}
		}
	}

	if err := f.SetPanes(registerSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	return buf.Bytes(), nil
}

// registerRow cell values in RegisterExportHeader order.
func registerRow(rec domain.RegisterData) []any {
	var value any
	switch {
	case rec.Value != nil:
		value = *rec.Value
	case rec.StringValue != nil:
		value = *rec.StringValue
	}

	var measurement any
	if rec.Measurement != nil {
		measurement = rec.Measurement.String()
	}

	var order any
	if rec.Order != nil {
		order = *rec.Order
	}

	var lastUpdate any
	if rec.LastUpdate != nil {
		lastUpdate = rec.LastUpdate.UTC().Format(time.DateTime)
	}

	return []any{
		rec.Address,
		rec.Description,
		value,
		rec.StateText,
		rec.Units,
		measurement,
		order,
		string(rec.Source),
		lastUpdate,
	}
}
