package domain

import (
	"strconv"
	"strings"
)

// CellKind identifies the intrinsic type of a spreadsheet cell value.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
)

// CellValue is a tagged union over the value of a single spreadsheet cell.
// Numeric validation is a kind check: text that merely looks numeric stays
// CellText and never passes for a number.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
}

// EmptyCell returns the absent-cell value.
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// TextCell returns a textual cell value.
func TextCell(s string) CellValue {
	return CellValue{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell value.
func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Number: f}
}

// BoolCell returns a boolean cell value.
func BoolCell(b bool) CellValue {
	return CellValue{Kind: CellBool, Bool: b}
}

// IsEmpty reports whether the cell is absent.
func (c CellValue) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// IsNumber reports whether the cell holds an intrinsically numeric value.
func (c CellValue) IsNumber() bool {
	return c.Kind == CellNumber
}

// HasContent reports whether the cell carries meaningful data. Text cells
// that are whitespace-only do not count.
func (c CellValue) HasContent() bool {
	switch c.Kind {
	case CellEmpty:
		return false
	case CellText:
		return strings.TrimSpace(c.Text) != ""
	default:
		return true
	}
}

// String renders the cell for output and log messages.
func (c CellValue) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

// KindName returns a short name for the cell kind, used in skip diagnostics.
func (c CellValue) KindName() string {
	switch c.Kind {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	case CellBool:
		return "bool"
	default:
		return "empty"
	}
}
