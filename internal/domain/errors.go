package domain

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrIssuesFound is returned by a check run that accumulated at least one issue.
	ErrIssuesFound = errors.New("consistency validation failed with issues")

	// ErrConflictsFound is returned by an extraction asked to fail on conflicts.
	ErrConflictsFound = errors.New("type conflicts found between trees")

	// ErrRootNotFound is returned when the tree to check does not exist.
	ErrRootNotFound = errors.New("source root not found")

	// ErrSourceTreeNotFound is returned when one of the extraction trees does not exist.
	ErrSourceTreeNotFound = errors.New("source tree not found")
)
