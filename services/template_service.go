package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateTemplate builds an empty import workbook: the three required
// sheets with their bolded header rows and nothing else. The result
// passes the header checks of Validate unchanged.
func GenerateTemplate() (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sheets := []string{SheetSpecifications, SheetLinks, SheetFiles}
	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet for the first one.
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		headers := RequiredHeaders[sheet]
		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				f.Close()
				return nil, err
			}
		}

		lastCell, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", lastCell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("style headers of %s: %w", sheet, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}
