// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2018-2026 The Blankcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the semantic version of the blankd utilities.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec (https://semver.org/).  It may be overridden at build time with:
	// '-ldflags "-X github.com/blankcoin/blankd/internal/version.Version=fullsemver"'
	//
	// It MUST be a full semantic version or the package panics on init.
	Version = "1.0.0-pre"

	// The individual semantic version components parsed from Version.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// parseSemVer parses the semver components of the provided string.
func parseSemVer(s string) (major, minor, patch uint, pre, build string, err error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		err := fmt.Errorf("malformed version string %q: does not conform to "+
			"semver specification", s)
		return 0, 0, 0, "", "", err
	}

	var nums [3]uint
	for i, field := range []string{"major", "minor", "patch"} {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return 0, 0, 0, "", "", fmt.Errorf("malformed semver %s: %w",
				field, err)
		}
		nums[i] = uint(val)
	}
	return nums[0], nums[1], nums[2], m[4], m[5], nil
}

func init() {
	var err error
	Major, Minor, Patch, PreRelease, BuildMetadata, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// vcsCommitID returns the abbreviated git revision the binary was built from
// or an empty string when it is unknown.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the application version.  Builds without build metadata are
// suffixed with the commit they were built from when it is known.
func String() string {
	if BuildMetadata != "" {
		return Version
	}
	if commit := vcsCommitID(); commit != "" {
		return Version + "+" + commit
	}
	return Version
}
