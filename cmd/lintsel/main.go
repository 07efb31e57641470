package main

import (
	stdcontext "context"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/pescuma/lintsel/lib/consoles"
)

var cli struct {
	Verbose bool `short:"v" help:"Show debug output." env:"LINTSEL_VERBOSE"`

	Check   CheckCmd   `cmd:"" default:"withargs" help:"Select files, locate configuration and run the linter on them."`
	Files   FilesCmd   `cmd:"" help:"List the files that would be checked."`
	Configs ConfigsCmd `cmd:"" help:"List the configuration files that would be used."`
}

type context struct {
	ctx     stdcontext.Context
	console consoles.Console
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("lintsel"),
		kong.Description("Run a linter on all files of a directory, or only on the ones changed by the last commit."),
		kong.ShortUsageOnError(),
		kong.Configuration(YAML, "~/.lintsel.yaml", "./.lintsel.yaml"),
	)

	runCtx, stop := signal.NotifyContext(stdcontext.Background(), os.Interrupt)
	defer stop()

	err := ctx.Run(&context{
		ctx:     runCtx,
		console: consoles.NewStdOutConsole(cli.Verbose),
	})
	ctx.FatalIfErrorf(err)
}
