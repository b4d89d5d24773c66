package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: a picked date, a printed year list, or a quit without picking.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: terminal failures, unreadable config, log setup failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: malformed --date, non-integer --min/--max, unknown flags
	// or an unknown --theme preset.
	ExitUsage = 2

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a config file whose year bounds cannot be turned into a range.
	ExitDataErr = 4
)
