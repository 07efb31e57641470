package analysis

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/pescuma/lintsel/lib/consoles"
	"github.com/pescuma/lintsel/lib/utils"
)

// pylint encodes the categories of the messages it issued in the exit code. Only this bit means
// the run itself failed.
const pylintUsageError = 32

type PylintOptions struct {
	Pylint       string
	Json2Html    string
	Plugins      []string
	OutputFormat string
	ReportFile   string
	DocumentFile string
}

func DefaultPylintOptions() *PylintOptions {
	return &PylintOptions{
		Pylint:       "pylint",
		Json2Html:    "pylint-json2html",
		Plugins:      []string{"pylint_json2html"},
		OutputFormat: "jsonextended",
		ReportFile:   "report.json",
		DocumentFile: "report.html",
	}
}

type Pylint struct {
	console consoles.Console
	opts    *PylintOptions
}

func NewPylint(console consoles.Console, opts *PylintOptions) *Pylint {
	if opts == nil {
		opts = DefaultPylintOptions()
	}

	return &Pylint{
		console: console,
		opts:    opts,
	}
}

func (p *Pylint) Analyze(ctx context.Context, files []string, configPath string) (*Report, error) {
	out, err := os.Create(p.opts.ReportFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %v", p.opts.ReportFile)
	}
	defer out.Close()

	cmd := exec.CommandContext(ctx, p.opts.Pylint, p.analyzeArgs(files, configPath)...)
	cmd.Stdout = out

	err = p.run(cmd, "pylint: ", "Analyzing "+utils.TruncateFilename(strings.Join(files, " ")))
	if code := exitCode(err); code > 0 && code&pylintUsageError == 0 {
		err = nil
	}
	if err != nil {
		// A failed run leaves nothing worth keeping in the report file.
		_ = out.Close()
		_ = os.Remove(p.opts.ReportFile)
		return nil, errors.Wrapf(err, "running %v", p.opts.Pylint)
	}

	size, err := fileSize(p.opts.ReportFile)
	if err != nil {
		return nil, err
	}

	p.console.Printf("Report written to %v (%v)\n", p.opts.ReportFile, humanize.Bytes(uint64(size)))

	return &Report{
		Path:   p.opts.ReportFile,
		Format: p.opts.OutputFormat,
		Size:   size,
	}, nil
}

func (p *Pylint) Render(ctx context.Context, report *Report) (*Document, error) {
	cmd := exec.CommandContext(ctx, p.opts.Json2Html, p.renderArgs(report)...)
	cmd.Stdout = p.prefixed(os.Stdout, "json2html: ")

	err := p.run(cmd, "json2html: ", "Rendering "+report.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "running %v", p.opts.Json2Html)
	}

	size, err := fileSize(p.opts.DocumentFile)
	if err != nil {
		return nil, err
	}

	p.console.Printf("Document written to %v (%v)\n", p.opts.DocumentFile, humanize.Bytes(uint64(size)))

	return &Document{
		Path: p.opts.DocumentFile,
		Size: size,
	}, nil
}

func (p *Pylint) analyzeArgs(files []string, configPath string) []string {
	var args []string

	if configPath != "" {
		args = append(args, "--rcfile="+configPath)
	}
	if len(p.opts.Plugins) > 0 {
		args = append(args, "--load-plugins="+strings.Join(p.opts.Plugins, ","))
	}
	if p.opts.OutputFormat != "" {
		args = append(args, "--output-format="+p.opts.OutputFormat)
	}

	return append(args, files...)
}

func (p *Pylint) renderArgs(report *Report) []string {
	var args []string

	if report.Format != "" {
		args = append(args, "-f", report.Format)
	}

	return append(args, "-o", p.opts.DocumentFile, report.Path)
}

func (p *Pylint) run(cmd *exec.Cmd, prefix string, description string) error {
	p.console.Debugf("Executing '%v'\n", strings.Join(cmd.Args, "' '"))

	cmd.Stderr = p.prefixed(os.Stderr, prefix)

	bar := utils.NewSpinner(description)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	err := cmd.Run()

	close(done)
	_ = bar.Finish()

	return err
}

func (p *Pylint) prefixed(w io.Writer, prefix string) io.Writer {
	return lineprefix.New(lineprefix.Writer(w), lineprefix.PrefixFunc(func() string {
		return p.console.Prepare(prefix)
	}))
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return info.Size(), nil
}
