package droidregexp

import "regexp"

var (
	PackageName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

	APK       = regexp.MustCompile(`(?i)\.apk$`)
	BinaryXML = regexp.MustCompile(`(?i)\.xml$`)
)
