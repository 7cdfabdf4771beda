package domain

import (
	"fmt"
	"strings"
	"time"
)

// ChangelogHeader starts a changelog that does not exist yet.
const ChangelogHeader = "# Changelog\n\nAll notable changes to this project will be documented in this file.\n\n"

const changelogEntryTemplate = "## [%s] - %s\n\n" +
	"### Added\n- Initial release of shared types package\n\n" +
	"### Changed\n- N/A\n\n" +
	"### Deprecated\n- N/A\n\n" +
	"### Removed\n- N/A\n\n" +
	"### Fixed\n- N/A\n\n"

// ChangelogEntry renders the section for one release.
func ChangelogEntry(version string, date time.Time) string {
	return fmt.Sprintf(changelogEntryTemplate, version, date.Format(time.DateOnly))
}

// InsertChangelogEntry places the entry as its own line in front of the first
// line starting with "## [". Without such a line the entry is appended after
// a newline.
func InsertChangelogEntry(content, version string, date time.Time) string {
	entry := ChangelogEntry(version, date)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "## [") {
			continue
		}

		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:i]...)
		out = append(out, entry)
		out = append(out, lines[i:]...)

		return strings.Join(out, "\n")
	}

	return content + "\n" + entry
}
