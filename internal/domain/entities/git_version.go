package entities

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// MinHelperGitVersion is the first git release reading GIT_CONFIG_COUNT.
const MinHelperGitVersion = "v2.31.0"

var gitVersionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseGitVersion extracts a semantic version from `git --version` output,
// e.g. "git version 2.39.3 (Apple Git-146)" -> "v2.39.3".
// Vendor suffixes such as ".windows.1" are dropped.
func ParseGitVersion(output string) (string, error) {
	match := gitVersionPattern.FindStringSubmatch(strings.TrimSpace(output))
	if match == nil {
		return "", fmt.Errorf("unrecognized git version output %q", strings.TrimSpace(output))
	}

	patch := match[3]
	if patch == "" {
		patch = "0"
	}
	version := normalizeVersion(match[1] + "." + match[2] + "." + patch)
	if !semver.IsValid(version) {
		return "", fmt.Errorf("unrecognized git version %q", version)
	}
	return version, nil
}

// SupportsConfigEnv reports whether the given git version honours GIT_CONFIG_COUNT.
func SupportsConfigEnv(version string) bool {
	return semver.Compare(normalizeVersion(version), MinHelperGitVersion) >= 0
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
