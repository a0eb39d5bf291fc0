package exporter

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"shipfill/internal/config"
	"shipfill/pkg/contracts/domain"
)

// newTemplate writes an empty template workbook and returns its path.
func newTemplate(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	path := filepath.Join(dir, "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestOpenTemplate_Missing(t *testing.T) {
	_, err := OpenTemplate(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestTemplateWriter_Append(t *testing.T) {
	dir := t.TempDir()

	writer, err := OpenTemplate(newTemplate(t, dir))
	require.NoError(t, err)
	defer writer.Close()

	assert.Equal(t, config.OutputStartRow, writer.Cursor())
	assert.Equal(t, 0, writer.Rows())

	ctx := domain.ShipmentContext{
		OrderNo: "JB24FW-M34",
		Remark:  domain.TextCell("partial shipment"),
		ETD:     "08-Aug",
		Carrier: "AIR",
	}

	row, err := writer.Append(ctx, domain.LineItem{
		SourceRow: 19,
		Detail:    domain.TextCell("hood string"),
		Color:     domain.TextCell("BLACK"),
		Price:     2.5,
		Quantity:  400,
	})
	require.NoError(t, err)
	assert.Equal(t, config.OutputStartRow, row)

	row, err = writer.Append(ctx, domain.LineItem{
		SourceRow: 23,
		Detail:    domain.TextCell("label"),
		Color:     domain.TextCell("RED"),
		Price:     0.12,
		Quantity:  3000,
	})
	require.NoError(t, err)
	assert.Equal(t, config.OutputStartRow+1, row, "cursor advances by exactly one per row")
	assert.Equal(t, 2, writer.Rows())

	outPath := filepath.Join(dir, "filled.xlsx")
	require.NoError(t, writer.Save(outPath))

	out, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer out.Close()
	sheet := out.GetSheetName(0)

	get := func(col string, row int) string {
		v, err := out.GetCellValue(sheet, fmt.Sprintf("%s%d", col, row))
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "08-Aug", get(config.OutETDCol, 7))
	assert.Equal(t, "AIR", get(config.OutCarrierCol, 7))
	assert.Equal(t, "JB24FW-M34", get(config.OutOrderNoCol, 7))
	assert.Equal(t, "BLACK", get(config.OutColorCol, 7))
	assert.Equal(t, "400", get(config.OutQuantityCol, 7))
	assert.Equal(t, "2.5", get(config.OutPriceCol, 7))
	assert.Equal(t, "hood string", get(config.OutDetailCol, 7))
	assert.Equal(t, "partial shipment", get(config.OutRemarkCol, 7))

	assert.Equal(t, "label", get(config.OutDetailCol, 8))
	assert.Equal(t, "3000", get(config.OutQuantityCol, 8))
}

func TestTemplateWriter_AbsentFieldsLeaveCellsUntouched(t *testing.T) {
	dir := t.TempDir()

	writer, err := OpenTemplate(newTemplate(t, dir))
	require.NoError(t, err)
	defer writer.Close()

	// No ETD, no carrier, empty remark: only the item fields and order
	// number are written.
	_, err = writer.Append(domain.ShipmentContext{OrderNo: "JB24FW-M36"}, domain.LineItem{
		SourceRow: 19,
		Detail:    domain.TextCell("zipper"),
		Color:     domain.EmptyCell(),
		Price:     1.2,
		Quantity:  10,
	})
	require.NoError(t, err)

	outPath := filepath.Join(dir, "filled.xlsx")
	require.NoError(t, writer.Save(outPath))

	out, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer out.Close()
	sheet := out.GetSheetName(0)

	etd, err := out.GetCellValue(sheet, fmt.Sprintf("%s%d", config.OutETDCol, 7))
	require.NoError(t, err)
	assert.Empty(t, etd)

	color, err := out.GetCellValue(sheet, fmt.Sprintf("%s%d", config.OutColorCol, 7))
	require.NoError(t, err)
	assert.Empty(t, color)

	orderNo, err := out.GetCellValue(sheet, fmt.Sprintf("%s%d", config.OutOrderNoCol, 7))
	require.NoError(t, err)
	assert.Equal(t, "JB24FW-M36", orderNo)
}
