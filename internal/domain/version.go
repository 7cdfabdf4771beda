package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
)

// ReleaseKind selects how the package version is bumped.
type ReleaseKind string

// Release kinds, following npm version semantics.
const (
	ReleaseMajor      ReleaseKind = "major"
	ReleaseMinor      ReleaseKind = "minor"
	ReleasePatch      ReleaseKind = "patch"
	ReleasePremajor   ReleaseKind = "premajor"
	ReleasePreminor   ReleaseKind = "preminor"
	ReleasePrepatch   ReleaseKind = "prepatch"
	ReleasePrerelease ReleaseKind = "prerelease"
)

// ReleaseKinds lists every accepted kind.
var ReleaseKinds = []ReleaseKind{
	ReleaseMajor,
	ReleaseMinor,
	ReleasePatch,
	ReleasePremajor,
	ReleasePreminor,
	ReleasePrepatch,
	ReleasePrerelease,
}

// ErrInvalidReleaseKind is returned for a kind outside ReleaseKinds.
var ErrInvalidReleaseKind = errors.New("invalid release kind")

const prereleaseID = "0"

// ParseReleaseKind validates a user-supplied kind.
func ParseReleaseKind(s string) (ReleaseKind, error) {
	for _, kind := range ReleaseKinds {
		if string(kind) == s {
			return kind, nil
		}
	}

	names := make([]string, len(ReleaseKinds))
	for i, kind := range ReleaseKinds {
		names[i] = string(kind)
	}

	return "", errors.WithHintf(
		errors.Wrapf(ErrInvalidReleaseKind, "%q", s),
		"valid kinds: %s", strings.Join(names, ", "),
	)
}

// NextVersion bumps current the way `npm version <kind>` does.
func NextVersion(current string, kind ReleaseKind) (string, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return "", fmt.Errorf("parse version %q: %w", current, err)
	}

	major, minor, patch := v.Major(), v.Minor(), v.Patch()
	pre := v.Prerelease()

	var next *semver.Version

	switch kind {
	case ReleaseMajor:
		if pre != "" && minor == 0 && patch == 0 {
			next = semver.New(major, 0, 0, "", "")
		} else {
			next = semver.New(major+1, 0, 0, "", "")
		}
	case ReleaseMinor:
		if pre != "" && patch == 0 {
			next = semver.New(major, minor, 0, "", "")
		} else {
			next = semver.New(major, minor+1, 0, "", "")
		}
	case ReleasePatch:
		if pre != "" {
			next = semver.New(major, minor, patch, "", "")
		} else {
			next = semver.New(major, minor, patch+1, "", "")
		}
	case ReleasePremajor:
		next = semver.New(major+1, 0, 0, prereleaseID, "")
	case ReleasePreminor:
		next = semver.New(major, minor+1, 0, prereleaseID, "")
	case ReleasePrepatch:
		next = semver.New(major, minor, patch+1, prereleaseID, "")
	case ReleasePrerelease:
		if pre == "" {
			next = semver.New(major, minor, patch+1, prereleaseID, "")
		} else {
			next = semver.New(major, minor, patch, bumpPrerelease(pre), "")
		}
	default:
		return "", errors.Wrapf(ErrInvalidReleaseKind, "%q", kind)
	}

	return next.String(), nil
}

// bumpPrerelease increments the last numeric identifier, or appends one.
func bumpPrerelease(pre string) string {
	ids := strings.Split(pre, ".")
	for i := len(ids) - 1; i >= 0; i-- {
		n, err := strconv.ParseUint(ids[i], 10, 64)
		if err != nil {
			continue
		}

		ids[i] = strconv.FormatUint(n+1, 10)

		return strings.Join(ids, ".")
	}

	return pre + "." + prereleaseID
}
