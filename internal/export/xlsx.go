package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"invoiceflow/internal/domain"
)

const sheetName = "Invoices"

// WriteXLSX renders the invoice list as a single-sheet workbook with a
// bold header row and writes it to w.
func WriteXLSX(w io.Writer, invoices []domain.Invoice) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("export: renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: creating header style: %w", err)
	}

	for col, name := range columns {
		cell, cellErr := excelize.CoordinatesToCellName(col+1, 1)
		if cellErr != nil {
			return fmt.Errorf("export: header cell: %w", cellErr)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("export: writing header: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("export: styling header: %w", err)
		}
	}

	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		for col, value := range row {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, i+2)
			if cellErr != nil {
				return fmt.Errorf("export: data cell: %w", cellErr)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("export: writing row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}
