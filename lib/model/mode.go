package model

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidMode = errors.New("invalid mode")

// Mode selects which files are handed to the analysis.
type Mode int

const (
	ModeAll Mode = iota
	ModeChanged
)

func ParseMode(text string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "all":
		return ModeAll, nil
	case "changed", "chg":
		return ModeChanged, nil
	default:
		return ModeAll, errors.Wrapf(ErrInvalidMode, "%q (expected all or changed)", text)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeChanged:
		return "changed"
	default:
		return "<unknown>"
	}
}

func (m Mode) Description() string {
	switch m {
	case ModeAll:
		return "All"
	case ModeChanged:
		return "Changed"
	default:
		return "Unknown"
	}
}
