package analysis

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Collaborator runs the external analysis and converts its structured report to a document
// meant for people.
type Collaborator interface {
	Analyze(ctx context.Context, files []string, configPath string) (*Report, error)
	Render(ctx context.Context, report *Report) (*Document, error)
}

type Report struct {
	Path   string
	Format string
	Size   int64
}

type Document struct {
	Path string
	Size int64
}

type JoinPolicy int

const (
	// JoinConcat concatenates all paths without separator. This is how the configuration was
	// always passed to the linter, and it produces a broken path when more than one file is
	// found.
	JoinConcat JoinPolicy = iota
	// JoinFirst uses only the first file found.
	JoinFirst
)

func ParseJoinPolicy(text string) (JoinPolicy, error) {
	switch strings.ToLower(text) {
	case "", "concat":
		return JoinConcat, nil
	case "first":
		return JoinFirst, nil
	default:
		return JoinConcat, errors.Errorf("unknown config join policy: %v", text)
	}
}

func (p JoinPolicy) String() string {
	switch p {
	case JoinConcat:
		return "concat"
	case JoinFirst:
		return "first"
	default:
		return "<unknown>"
	}
}

// JoinConfigPaths turns the located configuration files into the single path handed to the
// linter.
func JoinConfigPaths(paths []string, policy JoinPolicy) string {
	if len(paths) == 0 {
		return ""
	}

	switch policy {
	case JoinFirst:
		return paths[0]
	default:
		return strings.Join(paths, "")
	}
}
