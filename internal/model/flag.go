package model

// Flag is the review state a user or a previous run left in a subject.
type Flag int

const (
	// FlagNone means the subject carries no review marker.
	FlagNone Flag = iota
	// FlagDuplicate marks a row already flagged as a possible duplicate ("?" prefix).
	FlagDuplicate
	// FlagNotDuplicate marks a row the user confirmed is not a duplicate ("!" prefix).
	FlagNotDuplicate
)

const (
	// DuplicatePrefix starts the subject of a flagged duplicate.
	DuplicatePrefix = '?'
	// NotDuplicatePrefix starts the subject of a confirmed non-duplicate.
	NotDuplicatePrefix = '!'
)

// ParseFlag derives the Flag from the first byte of a subject.
func ParseFlag(subject string) Flag {
	if subject == "" {
		return FlagNone
	}
	switch subject[0] {
	case DuplicatePrefix:
		return FlagDuplicate
	case NotDuplicatePrefix:
		return FlagNotDuplicate
	default:
		return FlagNone
	}
}

func (f Flag) String() string {
	switch f {
	case FlagDuplicate:
		return "duplicate"
	case FlagNotDuplicate:
		return "not-duplicate"
	default:
		return "none"
	}
}
