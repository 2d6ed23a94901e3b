package tools

import (
	"regexp"
	"strconv"
	"strings"
)

var versionRe = regexp.MustCompile(`v?(\d+(?:\.\d+){1,3})`)

// ParseVersion extracts a dotted version number from arbitrary probe
// output, e.g. "git version 2.39.2" -> "2.39.2".
func ParseVersion(s string) (string, bool) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// NormalizeVersion trims whitespace and a leading "v" prefix.
func NormalizeVersion(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "v")
}

// VersionLess reports whether version a sorts before version b, comparing
// dotted numeric parts left to right. Missing parts count as zero.
func VersionLess(a, b string) bool {
	pa := strings.Split(NormalizeVersion(a), ".")
	pb := strings.Split(NormalizeVersion(b), ".")
	n := len(pa)
	if len(pb) > n {
		n = len(pb)
	}
	for i := 0; i < n; i++ {
		x, y := 0, 0
		if i < len(pa) {
			x = leadingInt(pa[i])
		}
		if i < len(pb) {
			y = leadingInt(pb[i])
		}
		if x != y {
			return x < y
		}
	}
	return false
}

// leadingInt parses the leading digits of s, so "7ubuntu2" counts as 7.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
