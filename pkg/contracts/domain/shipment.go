package domain

// LineItem represents a single validated line item read from the data block
// of a shipment document. Price and Quantity are populated only after the
// row passed numeric validation.
type LineItem struct {
	SourceRow int       `json:"source_row" validate:"min=1"`
	Detail    CellValue `json:"detail"`
	Color     CellValue `json:"color"`
	Price     float64   `json:"price"`
	Quantity  float64   `json:"quantity"`
}

// ShipmentContext holds the per-file fields shared by every line item of one
// shipment document. ETD and Carrier are empty strings when the source text
// was absent or unparseable.
type ShipmentContext struct {
	OrderNo string    `json:"order_no" validate:"required"`
	Remark  CellValue `json:"remark"`
	ETD     string    `json:"etd,omitempty"`     // formatted as 02-Jan
	Carrier string    `json:"carrier,omitempty"` // BA tag, e.g. AIR, BOAT
}

// FileStatus classifies the outcome of extracting one input file.
type FileStatus int

const (
	// FileOK means extraction completed; Items may still be empty.
	FileOK FileStatus = iota
	// FileSkipped means the file was structurally unusable (no sheets,
	// missing order identifier) and was skipped without failing the batch.
	FileSkipped
	// FileFailed means the file could not be read at all (corrupt or
	// invalid archive, unreadable sheet).
	FileFailed
)

// String returns the status name for log messages.
func (s FileStatus) String() string {
	switch s {
	case FileOK:
		return "ok"
	case FileSkipped:
		return "skipped"
	case FileFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RowStats counts row outcomes within one file's data block.
type RowStats struct {
	RowsWithData int `json:"rows_with_data"`
	RowsValid    int `json:"rows_valid"`
	RowsInvalid  int `json:"rows_invalid"`
}

// FileResult is the complete outcome of extracting one input file. The batch
// driver switches on Status instead of unwinding errors through the loop.
type FileResult struct {
	File    string          `json:"file"`
	Status  FileStatus      `json:"status"`
	Reason  string          `json:"reason,omitempty"`
	Err     error           `json:"-"`
	Context ShipmentContext `json:"context"`
	Items   []LineItem      `json:"items"`
	Stats   RowStats        `json:"stats"`
}

// BatchSummary aggregates the outcome of one consolidation run.
type BatchSummary struct {
	FilesSeen      int    `json:"files_seen"`
	FilesProcessed int    `json:"files_processed"`
	FilesSkipped   int    `json:"files_skipped"`
	RowsWritten    int    `json:"rows_written"`
	OutputSaved    bool   `json:"output_saved"`
	OutputPath     string `json:"output_path,omitempty"`
}
