// Package textutil holds the text and number helpers shared by the extractor
// and the notification builder.
package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	escapedControl = regexp.MustCompile(`\\[nrt]`)
	controlRun     = regexp.MustCompile(`[\r\n\t]+`)
	spaceRun       = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]{2,}`)
)

// Sanitize flattens s to a single trimmed line.
// Literal "\n", "\r" and "\t" escapes and real CR/LF/TAB runs become one space,
// whitespace runs collapse to one space, and the result is NFC-normalized.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = escapedControl.ReplaceAllString(s, " ")
	s = controlRun.ReplaceAllString(s, " ")
	s = spaceRun.ReplaceAllString(s, " ")
	return norm.NFC.String(strings.TrimSpace(s))
}

// FirstNonEmpty returns the first value that is non-empty after sanitizing.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := Sanitize(v); s != "" {
			return s
		}
	}
	return ""
}

// JoinNonEmpty sanitizes parts and joins the non-empty ones with sep.
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := Sanitize(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}
