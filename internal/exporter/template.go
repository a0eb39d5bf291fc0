package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shipfill/internal/config"
	"shipfill/pkg/contracts/domain"
)

// TemplateWriter accumulates output rows into the template workbook. It is
// not safe for concurrent use; the batch is strictly sequential.
type TemplateWriter struct {
	file   *excelize.File
	sheet  string
	cursor int // next unused destination row
}

// OpenTemplate opens the pre-styled output template. The first sheet is the
// destination sheet and the cursor starts at the template's first data row.
// A missing or unreadable template is fatal for the run.
func OpenTemplate(path string) (*TemplateWriter, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output template %s: %w", path, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("output template %s has no sheets", path)
	}

	return &TemplateWriter{
		file:   f,
		sheet:  sheets[0],
		cursor: config.OutputStartRow,
	}, nil
}

// Append writes one consolidated row at the current cursor position and
// advances the cursor by one. It returns the destination row that was
// written. Absent ETD, carrier, or remark leave their cells untouched so the
// template formatting is preserved.
func (w *TemplateWriter) Append(ctx domain.ShipmentContext, item domain.LineItem) (int, error) {
	row := w.cursor

	if ctx.ETD != "" {
		if err := w.setCell(config.OutETDCol, row, ctx.ETD); err != nil {
			return 0, err
		}
	}
	if ctx.Carrier != "" {
		if err := w.setCell(config.OutCarrierCol, row, ctx.Carrier); err != nil {
			return 0, err
		}
	}
	if err := w.setCell(config.OutOrderNoCol, row, ctx.OrderNo); err != nil {
		return 0, err
	}
	if err := w.setCellValue(config.OutColorCol, row, item.Color); err != nil {
		return 0, err
	}
	if err := w.setCell(config.OutQuantityCol, row, item.Quantity); err != nil {
		return 0, err
	}
	if err := w.setCell(config.OutPriceCol, row, item.Price); err != nil {
		return 0, err
	}
	if err := w.setCellValue(config.OutDetailCol, row, item.Detail); err != nil {
		return 0, err
	}
	if err := w.setCellValue(config.OutRemarkCol, row, ctx.Remark); err != nil {
		return 0, err
	}

	w.cursor++
	return row, nil
}

// Rows returns the number of rows written so far.
func (w *TemplateWriter) Rows() int {
	return w.cursor - config.OutputStartRow
}

// Cursor returns the next unused destination row.
func (w *TemplateWriter) Cursor() int {
	return w.cursor
}

// Save persists the filled workbook to path. Called exactly once, after all
// files are processed.
func (w *TemplateWriter) Save(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save output workbook %s: %w", path, err)
	}
	return nil
}

// Close releases the workbook handle.
func (w *TemplateWriter) Close() error {
	return w.file.Close()
}

// setCell writes a plain value at (col, row).
func (w *TemplateWriter) setCell(col string, row int, value interface{}) error {
	axis := fmt.Sprintf("%s%d", col, row)
	if err := w.file.SetCellValue(w.sheet, axis, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", axis, err)
	}
	return nil
}

// setCellValue writes a typed cell variant, leaving the cell untouched when
// the source cell was empty.
func (w *TemplateWriter) setCellValue(col string, row int, cell domain.CellValue) error {
	switch cell.Kind {
	case domain.CellEmpty:
		return nil
	case domain.CellNumber:
		return w.setCell(col, row, cell.Number)
	case domain.CellBool:
		return w.setCell(col, row, cell.Bool)
	default:
		return w.setCell(col, row, cell.Text)
	}
}
