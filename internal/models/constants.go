package models

// Common constants used across the application
const (
	// NotAvailable is the display value when a metric cannot be computed
	NotAvailable = "N/A"
)
