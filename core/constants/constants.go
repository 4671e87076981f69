package constants

const (
	Version = "v0.1.0"

	// AppName is used for the HTTP server name and the CLI root command.
	AppName = "bodydfi"
)
