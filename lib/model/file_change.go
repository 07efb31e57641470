package model

type ChangeKind int

const (
	ChangeUnknown ChangeKind = iota
	ChangeAdded
	ChangeModified
	ChangeDeleted
	ChangeRenamed
	ChangeTypeChanged
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "A"
	case ChangeModified:
		return "M"
	case ChangeDeleted:
		return "D"
	case ChangeRenamed:
		return "R"
	case ChangeTypeChanged:
		return "T"
	default:
		return "?"
	}
}

// Selected reports whether files with this kind of change are handed to the analysis.
// Renames and type changes are left out on purpose.
func (k ChangeKind) Selected() bool {
	return k == ChangeAdded || k == ChangeModified || k == ChangeDeleted
}

// FileChange is one entry of the diff between HEAD and its first parent.
// Paths are relative to the repository root and slash separated.
type FileChange struct {
	Kind ChangeKind

	// Path is the path before the change. Added files have no previous path, so it holds the new one.
	Path string
	// NewPath is empty for deleted files.
	NewPath string
}
