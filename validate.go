package discovery

import (
	"regexp"
	"strings"
)

// comPortPattern matches Windows port identifiers such as COM3.
var comPortPattern = regexp.MustCompile(`(?i)^COM[0-9]+$`)

// devicePathPrefix is the Unix device path prefix.
const devicePathPrefix = "/dev/"

// ValidName reports whether name has the lexical shape of a serial endpoint:
// a COM<n> identifier or anything under /dev/. It never touches the
// filesystem, so "/dev/invalid" is a valid name even though it cannot exist.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if comPortPattern.MatchString(name) {
		return true
	}
	return len(name) >= len(devicePathPrefix) &&
		strings.EqualFold(name[:len(devicePathPrefix)], devicePathPrefix)
}
