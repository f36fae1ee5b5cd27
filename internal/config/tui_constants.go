package config

// Layout constants.
const (
	// CompactModeThreshold drops secondary table columns below this width.
	CompactModeThreshold = 90

	// ProgressBarWidth is the width of the dashboard conversion bar.
	ProgressBarWidth = 40

	// RevenueBarWidth is the longest bar in the monthly revenue chart.
	RevenueBarWidth = 30

	// FormInputWidth is the visible width of modal text inputs.
	FormInputWidth = 40
)

// Display limits.
const (
	// MaxVisibleRows limits table rows before the list scrolls.
	MaxVisibleRows = 15

	// NameColumnWidth and CompanyColumnWidth bound lead table cells.
	NameColumnWidth    = 24
	CompanyColumnWidth = 22

	// DescriptionColumnWidth bounds the sale description cell.
	DescriptionColumnWidth = 40
)

// Input constraints.
const (
	MaxSearchLength      = 80
	MaxNameLength        = 100
	MaxDescriptionLength = 200
	MaxAmountLength      = 20
)
