package dataprocessing

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"shipfill/internal/config"
	"shipfill/pkg/contracts/domain"
)

// ExtractFile reads one shipment document and extracts its per-file context
// and every valid line item from the fixed data block. Structural problems
// are returned as FileSkipped or FileFailed; row- and field-level problems
// are logged and extraction continues. The workbook handle is released on
// every path.
func ExtractFile(path string, logger *slog.Logger) domain.FileResult {
	if logger == nil {
		logger = slog.Default()
	}

	name := filepath.Base(path)
	result := domain.FileResult{File: name}

	f, err := excelize.OpenFile(path)
	if err != nil {
		// Covers corrupt or invalid archives as a distinct failure kind.
		result.Status = domain.FileFailed
		result.Reason = "cannot open workbook"
		result.Err = fmt.Errorf("failed to open %s: %w", name, err)
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Status = domain.FileSkipped
		result.Reason = "workbook has no sheets"
		return result
	}

	// Data always lives on the first sheet; the last sheet's name carries
	// the order number.
	dataSheet := sheets[0]
	orderNo := strings.TrimSpace(sheets[len(sheets)-1])
	if orderNo == "" {
		result.Status = domain.FileSkipped
		result.Reason = "missing order identifier (last sheet name empty)"
		return result
	}

	etdRaw, err := readCell(f, dataSheet, config.ETDCell)
	if err != nil {
		return failResult(result, name, err)
	}

	var etd, carrier string
	if etdRaw.IsEmpty() {
		logger.Warn("ETD cell is empty, file will have no ETD/carrier",
			slog.String("file", name),
			slog.String("cell", config.ETDCell))
	} else {
		etd, carrier = ParseETD(etdRaw, logger.With(slog.String("file", name)))
	}

	remark, err := readCell(f, dataSheet, config.RemarkCell)
	if err != nil {
		return failResult(result, name, err)
	}

	result.Context = domain.ShipmentContext{
		OrderNo: orderNo,
		Remark:  remark,
		ETD:     etd,
		Carrier: carrier,
	}

	logger.Info("extracted common fields",
		slog.String("file", name),
		slog.String("sheet", dataSheet),
		slog.String("order_no", orderNo),
		slog.String("remark", remark.String()))

	for row := config.DataBlockStartRow; row <= config.DataBlockEndRow; row++ {
		detail, err := readCellAt(f, dataSheet, config.DetailCol, row)
		if err != nil {
			return failResult(result, name, err)
		}
		color, err := readCellAt(f, dataSheet, config.ColorCol, row)
		if err != nil {
			return failResult(result, name, err)
		}
		price, err := readCellAt(f, dataSheet, config.PriceCol, row)
		if err != nil {
			return failResult(result, name, err)
		}
		qty, err := readCellAt(f, dataSheet, config.QuantityCol, row)
		if err != nil {
			return failResult(result, name, err)
		}

		if !HasData(detail, color, price, qty) {
			continue
		}
		result.Stats.RowsWithData++

		if !IsValidNumeric(price, qty) {
			result.Stats.RowsInvalid++
			logger.Warn("skipping row, price or quantity is not numeric",
				slog.String("file", name),
				slog.Int("row", row),
				slog.String("price", price.String()),
				slog.String("price_kind", price.KindName()),
				slog.String("quantity", qty.String()),
				slog.String("quantity_kind", qty.KindName()))
			continue
		}

		result.Stats.RowsValid++
		result.Items = append(result.Items, domain.LineItem{
			SourceRow: row,
			Detail:    detail,
			Color:     color,
			Price:     price.Number,
			Quantity:  qty.Number,
		})
	}

	switch {
	case result.Stats.RowsWithData == 0:
		logger.Warn("no data found in data block",
			slog.String("file", name),
			slog.Int("start_row", config.DataBlockStartRow),
			slog.Int("end_row", config.DataBlockEndRow))
	case result.Stats.RowsValid == 0:
		logger.Warn("data found in data block but no row had numeric price/quantity",
			slog.String("file", name),
			slog.Int("rows_with_data", result.Stats.RowsWithData))
	}

	result.Status = domain.FileOK
	return result
}

// failResult marks a result as failed with a wrapped extraction error.
func failResult(result domain.FileResult, name string, err error) domain.FileResult {
	result.Status = domain.FileFailed
	result.Reason = "error while reading sheet"
	result.Err = fmt.Errorf("extraction failed for %s: %w", name, err)
	return result
}

// readCellAt reads the cell at (col, row) as a typed value.
func readCellAt(f *excelize.File, sheet string, col, row int) (domain.CellValue, error) {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return domain.EmptyCell(), err
	}
	return readCell(f, sheet, axis)
}

// readCell reads a cell as a typed value. Formula cells yield their cached
// value; formulas are never recalculated.
func readCell(f *excelize.File, sheet, axis string) (domain.CellValue, error) {
	raw, err := f.GetCellValue(sheet, axis)
	if err != nil {
		return domain.EmptyCell(), fmt.Errorf("read %s!%s: %w", sheet, axis, err)
	}

	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return domain.EmptyCell(), fmt.Errorf("type of %s!%s: %w", sheet, axis, err)
	}

	return toCellValue(raw, cellType), nil
}

// toCellValue maps an excelize value and cell type onto the CellValue
// variant. Shared and inline strings stay text even when they look numeric;
// untyped cells (the storage form of plain numbers) become numbers only when
// they parse as one.
func toCellValue(raw string, cellType excelize.CellType) domain.CellValue {
	switch cellType {
	case excelize.CellTypeBool:
		return domain.BoolCell(strings.EqualFold(raw, "TRUE") || raw == "1")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return domain.TextCell(raw)
	case excelize.CellTypeError:
		if raw == "" {
			return domain.EmptyCell()
		}
		return domain.TextCell(raw)
	default:
		// Number, date, formula (cached value) or unset.
		if strings.TrimSpace(raw) == "" {
			return domain.EmptyCell()
		}
		if n, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
			return domain.NumberCell(n)
		}
		return domain.TextCell(raw)
	}
}
