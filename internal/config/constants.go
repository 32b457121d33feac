package config

// Extraction defaults
const (
	DefaultPlaceholder        = "FUZZ"
	DefaultMaxNodes           = 250_000
	DefaultMaxFileSizeBytes   = 2 * 1024 * 1024 // 2MB
	DefaultMaxRecursionDepth  = 64
	DefaultMaxFanOut          = 64
	DefaultHTMLParser         = "goquery"
	DefaultContextPolicy      = "merge"
	DefaultContextSnippetSize = 100
)

// Log defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Resource-monitor defaults
const (
	DefaultResourceCheckIntervalSecs = 5
	DefaultResourceMemoryCeilingMB   = 512
)
