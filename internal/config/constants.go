package config

// Application constants - the fixed workbook convention every shipment
// document is expected to follow, plus the output template layout.
const (
	// Application Info
	AppName    = "shipfill"
	AppVersion = "1.0.0"

	// Input workbook convention. The first sheet is the data sheet and the
	// last sheet's name carries the order number.
	ETDCell    = "I11" // free text holding "YYYY.M.D.(BA)"
	RemarkCell = "A22" // file-wide remark, applied to every row

	// Data block bounds (1-indexed, inclusive).
	DataBlockStartRow = 19
	DataBlockEndRow   = 1000

	// Data block columns (1-indexed).
	DetailCol   = 7  // G
	ColorCol    = 8  // H
	PriceCol    = 9  // I
	QuantityCol = 10 // J

	// Output template layout. Rows are appended starting at OutputStartRow;
	// all other template formatting is left untouched.
	OutputStartRow = 7
	OutETDCol      = "B"
	OutCarrierCol  = "C"
	OutOrderNoCol  = "E"
	OutColorCol    = "F"
	OutQuantityCol = "G"
	OutPriceCol    = "I"
	OutDetailCol   = "K"
	OutRemarkCol   = "P"

	// File selection.
	InputExtension = ".xlsx"
	TempFilePrefix = "~$" // Excel lock files, never real input

	// Default paths (relative to the working directory).
	DefaultInputDir     = "input"
	DefaultTemplatePath = "output/template.xlsx"
	DefaultOutputPath   = "output/output_filled.xlsx"
	DefaultLogsDir      = "logs"
)

// OutputColumns lists the populated destination columns in layout order.
// Useful for tests that sweep a written row.
var OutputColumns = []string{
	OutETDCol, OutCarrierCol, OutOrderNoCol, OutColorCol,
	OutQuantityCol, OutPriceCol, OutDetailCol, OutRemarkCol,
}
