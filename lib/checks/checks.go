package checks

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/lintsel/lib/analysis"
	"github.com/pescuma/lintsel/lib/changes"
	"github.com/pescuma/lintsel/lib/consoles"
	"github.com/pescuma/lintsel/lib/files"
	"github.com/pescuma/lintsel/lib/model"
	"github.com/pescuma/lintsel/lib/utils"
)

type Options struct {
	Extension       string
	ConfigExtension string
	AncestorLevels  int
	Join            analysis.JoinPolicy
	Discover        *files.Options

	// OnlyExisting drops changed files that no longer exist or don't have Extension.
	OnlyExisting bool
}

func DefaultOptions() *Options {
	return &Options{
		Extension:       ".py",
		ConfigExtension: ".conf",
		AncestorLevels:  files.AncestorLevels,
		Join:            analysis.JoinConcat,
	}
}

type Selection struct {
	Mode    model.Mode
	Files   []string
	Configs []string
}

type Checker struct {
	console      consoles.Console
	collaborator analysis.Collaborator
	pluralize    *pluralize.Client
}

func NewChecker(console consoles.Console, collaborator analysis.Collaborator) *Checker {
	return &Checker{
		console:      console,
		collaborator: collaborator,
		pluralize:    pluralize.NewClient(),
	}
}

// ParseMode reports invalid modes to the user instead of failing. The returned bool is false
// when nothing should be done.
func (c *Checker) ParseMode(text string) (model.Mode, bool) {
	mode, err := model.ParseMode(text)
	if err != nil {
		c.console.Warnf("Invalid mode option: %v\n", text)
		return mode, false
	}

	return mode, true
}

func (c *Checker) SelectFiles(rootDir string, mode model.Mode, opts *Options) ([]string, error) {
	switch mode {
	case model.ModeAll:
		return files.DiscoverWithOptions(rootDir, opts.Extension, opts.Discover)

	case model.ModeChanged:
		result, err := changes.Resolve(rootDir)
		if err != nil {
			return nil, err
		}

		if opts.OnlyExisting {
			result = lo.Filter(result, func(path string, _ int) bool {
				exists, err := utils.FileExists(path)
				return err == nil && exists && strings.HasSuffix(path, opts.Extension)
			})
		}

		return result, nil

	default:
		return nil, errors.Wrapf(model.ErrInvalidMode, "%v", mode)
	}
}

func (c *Checker) LocateConfigs(rootDir string, opts *Options) ([]string, error) {
	return files.LocateConfigsUpTo(rootDir, opts.ConfigExtension, opts.AncestorLevels)
}

// ListFiles selects and prints the files to analyze. It returns nil when the mode is invalid.
func (c *Checker) ListFiles(rootDir string, modeText string, opts *Options) ([]string, error) {
	_, selected, err := c.listFiles(rootDir, modeText, opts)
	return selected, err
}

func (c *Checker) listFiles(rootDir string, modeText string, opts *Options) (*model.Mode, []string, error) {
	mode, ok := c.ParseMode(modeText)
	if !ok {
		return nil, nil, nil
	}

	selected, err := c.SelectFiles(rootDir, mode, opts)
	if err != nil {
		return nil, nil, err
	}

	c.printFiles(mode, selected)

	return &mode, selected, nil
}

// Select computes the files to analyze and the configuration candidates. It returns nil when
// the mode is invalid.
func (c *Checker) Select(rootDir string, modeText string, opts *Options) (*Selection, error) {
	mode, selected, err := c.listFiles(rootDir, modeText, opts)
	if err != nil || mode == nil {
		return nil, err
	}

	configs, err := c.LocateConfigs(rootDir, opts)
	if err != nil {
		return nil, err
	}

	return &Selection{
		Mode:    *mode,
		Files:   selected,
		Configs: configs,
	}, nil
}

// Check selects the files and hands them to the collaborator. It returns nil when there was
// nothing to analyze.
func (c *Checker) Check(ctx context.Context, rootDir string, modeText string, opts *Options) (*analysis.Document, error) {
	selection, err := c.Select(rootDir, modeText, opts)
	if err != nil || selection == nil {
		return nil, err
	}

	if len(selection.Files) == 0 {
		c.console.Printf("No files to check\n")
		return nil, nil
	}

	if len(selection.Configs) > 1 && opts.Join == analysis.JoinConcat {
		c.console.Warnf("Found %v configuration files, passing them concatenated: %v\n",
			len(selection.Configs), strings.Join(selection.Configs, ", "))
	}

	configPath := analysis.JoinConfigPaths(selection.Configs, opts.Join)

	report, err := c.collaborator.Analyze(ctx, selection.Files, configPath)
	if err != nil {
		return nil, err
	}

	return c.collaborator.Render(ctx, report)
}

func (c *Checker) printFiles(mode model.Mode, selected []string) {
	c.console.Printf("%v %v %v in the directory:\n", mode.Description(),
		humanize.Comma(int64(len(selected))), c.pluralize.Pluralize("file", len(selected), false))

	c.console.PushPrefix("  ")
	for _, path := range selected {
		c.console.Printf("%v\n", path)
	}
	c.console.PopPrefix()
}
