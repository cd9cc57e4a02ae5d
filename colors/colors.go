package colors

import "github.com/fatih/color"

// Console styles used by the contact book shell.
var (
	Warning = color.New(color.FgYellow).SprintFunc()
	Failure = color.New(color.FgRed).SprintFunc()
	Success = color.New(color.FgGreen).SprintFunc()
	Heading = color.New(color.FgBlue, color.Bold).SprintFunc()

	WarningLabel = Warning("Warning:")
)
