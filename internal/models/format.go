package models

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatBillions renders a raw currency value scaled to billions for display,
// e.g. "4,300B USD". Nil (missing) values render as the not-available marker.
// Scaling is presentation-only; metric math always runs on raw values.
func FormatBillions(raw *float64) string {
	if raw == nil {
		return NotAvailable
	}
	return displayPrinter.Sprintf("%.0fB USD", *raw/1e9)
}

// FormatGrowthRatio renders a growth ratio for display, e.g. "4.50x". Nil
// (not available) ratios render as the not-available marker.
func FormatGrowthRatio(ratio *float64) string {
	if ratio == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.2fx", *ratio)
}
