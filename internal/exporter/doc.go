// Package exporter fills the consolidated output workbook.
//
// TemplateWriter owns the single output workbook handle for the whole batch.
// It keeps one monotonically increasing destination-row cursor shared across
// all input files: every accepted line item lands at the cursor row and
// advances it by exactly one. The workbook is persisted once, at the very
// end, via Save; there is no partial or incremental save.
//
// Example usage:
//
//	writer, err := exporter.OpenTemplate("output/template.xlsx")
//	if err != nil {
//	    return err
//	}
//	defer writer.Close()
//
//	row, err := writer.Append(result.Context, item)
//	...
//	if writer.Rows() > 0 {
//	    err = writer.Save("output/output_filled.xlsx")
//	}
package exporter
