package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type stdoutConsole struct {
	logger   *log.Logger
	prefixes []string
}

func NewStdOutConsole(verbose bool) Console {
	return NewWriterConsole(os.Stdout, verbose)
}

func NewWriterConsole(w io.Writer, verbose bool) Console {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.InfoLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return &stdoutConsole{
		logger: logger,
	}
}

func (o *stdoutConsole) Printf(format string, a ...any) {
	o.logger.Info(o.Prepare(format, a...))
}

func (o *stdoutConsole) Debugf(format string, a ...any) {
	o.logger.Debug(o.Prepare(format, a...))
}

func (o *stdoutConsole) Warnf(format string, a ...any) {
	o.logger.Warn(o.Prepare(format, a...))
}

func (o *stdoutConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *stdoutConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *stdoutConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	return strings.TrimRight(builder.String(), "\n")
}
