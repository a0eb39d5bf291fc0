// Package dataprocessing implements the per-file extraction pipeline for
// shipment documents.
//
// The package is organized into three components:
//
// 1. ETD parser: extracts the departure date and carrier tag from the free
// text in the document header.
//
// 2. Row validator: decides whether a data-block row carries data and whether
// its price and quantity are intrinsically numeric.
//
// 3. File extractor: opens one workbook, derives the order number and remark,
// scans the fixed data block, and returns a FileResult the batch driver can
// switch on.
//
// Basic usage:
//
//	result := dataprocessing.ExtractFile("input/ETD08.08 AIR ... .xlsx", logger)
//	if result.Status == domain.FileOK {
//	    for _, item := range result.Items {
//	        // hand to the output accumulator
//	    }
//	}
//
// All row- and field-level problems are reported through the logger with the
// file name, row number, and offending value, then processing continues.
// Only structural problems (no sheets, unreadable archive) surface in the
// FileResult status.
package dataprocessing
