package config

// this holds the resolved configuration values from CLI
var (
	DB              string // connection string for the database
	LogLevel        string // sets the log level (zap log level values)
	WaitForServices string // duration to wait for other services to be ready
)
