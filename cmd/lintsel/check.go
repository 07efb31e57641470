package main

import (
	"github.com/pescuma/lintsel/lib/analysis"
	"github.com/pescuma/lintsel/lib/checks"
	"github.com/pescuma/lintsel/lib/files"
)

type SelectFlags struct {
	Path         string   `arg:"" help:"Directory to process. In changed mode it must be the root of a git repository." type:"path"`
	Mode         string   `short:"f" default:"all" help:"Files to check: all, or changed by the last commit (chg also works)." env:"LINTSEL_MODE"`
	Ext          string   `default:".py" help:"Extension of the files to check." env:"LINTSEL_EXT"`
	Gitignore    bool     `help:"Respect .gitignore file when listing all files."`
	Exclude      []string `help:"Globs, relative to the path, excluded when listing all files."`
	SkipVendored bool     `help:"Skip vendored code when listing all files."`
	OnlyExisting bool     `help:"In changed mode, drop deleted files and files with other extensions."`
}

type ConfigFlags struct {
	ConfigExt      string `default:".conf" help:"Extension of the configuration files." env:"LINTSEL_CONFIG_EXT"`
	AncestorLevels int    `default:"2" help:"How many parent directories are searched for configuration files."`
}

func options(s *SelectFlags, c *ConfigFlags) *checks.Options {
	opts := checks.DefaultOptions()
	opts.ConfigExtension = c.ConfigExt
	opts.AncestorLevels = c.AncestorLevels

	if s != nil {
		opts.Extension = s.Ext
		opts.OnlyExisting = s.OnlyExisting
		opts.Discover = &files.Options{
			RespectGitignore: s.Gitignore,
			Excludes:         s.Exclude,
			SkipVendored:     s.SkipVendored,
		}
	}

	return opts
}

type CheckCmd struct {
	SelectFlags `embed:""`
	ConfigFlags `embed:""`

	Join      string `default:"concat" enum:"concat,first" help:"How to pass more than one configuration file to the linter: concat or first."`
	Report    string `default:"report.json" help:"File where the linter report is written." type:"path"`
	Document  string `default:"report.html" help:"File where the readable report is written." type:"path"`
	Pylint    string `default:"pylint" help:"pylint executable." env:"LINTSEL_PYLINT"`
	Json2Html string `name:"json2html" default:"pylint-json2html" help:"pylint-json2html executable." env:"LINTSEL_JSON2HTML"`
}

func (c *CheckCmd) Run(ctx *context) error {
	opts := options(&c.SelectFlags, &c.ConfigFlags)

	var err error
	opts.Join, err = analysis.ParseJoinPolicy(c.Join)
	if err != nil {
		return err
	}

	pylintOpts := analysis.DefaultPylintOptions()
	pylintOpts.Pylint = c.Pylint
	pylintOpts.Json2Html = c.Json2Html
	pylintOpts.ReportFile = c.Report
	pylintOpts.DocumentFile = c.Document

	checker := checks.NewChecker(ctx.console, analysis.NewPylint(ctx.console, pylintOpts))

	_, err = checker.Check(ctx.ctx, c.Path, c.Mode, opts)
	return err
}

type FilesCmd struct {
	SelectFlags `embed:""`
}

func (c *FilesCmd) Run(ctx *context) error {
	checker := checks.NewChecker(ctx.console, nil)

	_, err := checker.ListFiles(c.Path, c.Mode, options(&c.SelectFlags, &ConfigFlags{}))
	return err
}

type ConfigsCmd struct {
	Path string `arg:"" help:"Directory to process." type:"path"`
	ConfigFlags `embed:""`
}

func (c *ConfigsCmd) Run(ctx *context) error {
	checker := checks.NewChecker(ctx.console, nil)

	configs, err := checker.LocateConfigs(c.Path, options(nil, &c.ConfigFlags))
	if err != nil {
		return err
	}

	for _, config := range configs {
		ctx.console.Printf("%v\n", config)
	}

	return nil
}
