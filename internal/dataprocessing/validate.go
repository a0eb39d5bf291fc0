package dataprocessing

import (
	"shipfill/pkg/contracts/domain"
)

// HasData reports whether a data-block row carries any meaningful data:
// at least one of the four cells is non-empty and, when textual, not purely
// whitespace. Rows failing this check are skipped silently.
func HasData(detail, color, price, qty domain.CellValue) bool {
	for _, cell := range []domain.CellValue{detail, color, price, qty} {
		if cell.HasContent() {
			return true
		}
	}
	return false
}

// IsValidNumeric reports whether both price and quantity are intrinsically
// numeric cells. Booleans and numeric-looking text do not qualify. A
// data-bearing row failing this check is counted as found-but-invalid.
func IsValidNumeric(price, qty domain.CellValue) bool {
	return price.IsNumber() && qty.IsNumber()
}
