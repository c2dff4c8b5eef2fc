// Package constants provides shared constants for the mortgage-calculator application.
package constants

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of payment periods in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// LongTermWarningYears is the total term above which a warning is raised
	LongTermWarningYears = 40

	// MaxTermYears is the longest term accepted, for a single rate period and
	// for all rate periods combined
	MaxTermYears = 100
)

// Mortgage type constants
const (
	// MortgageTypeFixed is a fixed-rate mortgage
	MortgageTypeFixed = "frm"

	// MortgageTypeAdjustable is an adjustable-rate mortgage with one or more rate periods
	MortgageTypeAdjustable = "arm"
)

// Mortgage defaults, matching the calculator's initial form values
const (
	DefaultHomeValue    = 500000.0
	DefaultDeposit      = 100000.0
	DefaultInterestRate = 5.0
	DefaultTermYears    = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
