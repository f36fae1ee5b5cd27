package config

import "time"

// Database/application settings.
const (
	AppName    = "salestrack"
	AppVersion = "1.0.0"
	DBFileName = "sales_v3.db"
	EnvPrefix  = "SALESTRACK_"
)

// Storage drivers.
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

// Store timings.
const (
	DefaultBusyTimeout  = 5 * time.Second
	DefaultQueryTimeout = 10 * time.Second
)

// Demo dataset shape.
const (
	SeedLeadCount     = 40
	SeedSaleCount     = 20
	SeedLeadValueMin  = 5000
	SeedLeadValueMax  = 85000
	SeedSaleAmountMin = 8000
	SeedSaleAmountMax = 45000
	SeedMonthsBack    = 5
	SeedDaysBack      = 28
	SeedMonthLength   = 30 * 24 * time.Hour
)

// Dashboard windows.
const (
	RevenueHistoryMonths = 6
)
