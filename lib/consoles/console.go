package consoles

type Console interface {
	Printf(format string, a ...any)
	Debugf(format string, a ...any)
	Warnf(format string, a ...any)

	PushPrefix(format string, a ...any)
	PopPrefix()

	// Prepare returns the text with the current prefixes, for output that does not go through the console.
	Prepare(format string, a ...any) string
}
