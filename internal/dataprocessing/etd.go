package dataprocessing

import (
	"log/slog"
	"regexp"
	"time"

	"shipfill/pkg/contracts/domain"
)

// The ETD cell holds free text like "2024.08.08.(AIR)": a dotted date,
// an optional trailing dot, and the carrier tag in parentheses. The strict
// pattern expects the trailing separator; the loose fallback drops it.
var (
	etdPatternStrict = regexp.MustCompile(`([0-9]{4}\.[0-9]{1,2}\.[0-9]{1,2})\.?\s*\(([^)]+)\)`)
	etdPatternLoose  = regexp.MustCompile(`([0-9]{4}\.[0-9]{1,2}\.[0-9]{1,2})\s*\(([^)]+)\)`)
)

// etdDateLayout accepts one- or two-digit month and day.
const etdDateLayout = "2006.1.2"

// etdOutputLayout renders the departure date as day and abbreviated month,
// e.g. "08-Aug".
const etdOutputLayout = "02-Jan"

// ParseETD extracts the departure date and carrier tag from the ETD cell.
// It returns ("", "") when the cell is not text or matches neither pattern,
// and ("", carrier) when the tag is present but the date does not parse;
// the carrier survives an unparseable date. Both results are reported as
// warnings, and the caller continues with whatever was recoverable.
func ParseETD(raw domain.CellValue, logger *slog.Logger) (etd, carrier string) {
	if logger == nil {
		logger = slog.Default()
	}

	if raw.Kind != domain.CellText {
		logger.Warn("ETD source is not text, cannot extract date/carrier",
			slog.String("value", raw.String()),
			slog.String("kind", raw.KindName()))
		return "", ""
	}

	text := raw.Text
	match := etdPatternStrict.FindStringSubmatch(text)
	if match == nil {
		match = etdPatternLoose.FindStringSubmatch(text)
	}
	if match == nil {
		logger.Warn("ETD text does not match expected format",
			slog.String("value", text))
		return "", ""
	}

	dateRaw, carrier := match[1], match[2]

	date, err := time.Parse(etdDateLayout, dateRaw)
	if err != nil {
		logger.Warn("ETD date does not parse, keeping carrier only",
			slog.String("date", dateRaw),
			slog.String("value", text),
			slog.String("carrier", carrier))
		return "", carrier
	}

	return date.Format(etdOutputLayout), carrier
}
