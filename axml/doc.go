// Package axml reads Android's compiled binary XML format, the encoding
// used for AndroidManifest.xml inside an .apk.
//
// Only what is needed to look up attribute values of an element is
// decoded: the string pool, element-start chunks and their attribute
// arrays. Every read is bounds-checked, so malformed or hostile input
// results in an error or an empty value, never a panic.
package axml
