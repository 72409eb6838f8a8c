package android

import (
	"errors"

	"github.com/frantjc/droid/axml"
)

const (
	AndroidManifestName = "AndroidManifest.xml"
)

const (
	tagUsesSDK = "uses-sdk"

	attrVersionName      = "versionName"
	attrVersionCode      = "versionCode"
	attrMinSDKVersion    = "minSdkVersion"
	attrTargetSDKVersion = "targetSdkVersion"
)

// Manifest holds the fields of a binary AndroidManifest.xml that
// identify an application.
type Manifest struct {
	Package          string `json:"package,omitempty" yaml:"package,omitempty"`
	VersionName      string `json:"versionName,omitempty" yaml:"versionName,omitempty"`
	VersionCode      int64  `json:"versionCode,omitempty" yaml:"versionCode,omitempty"`
	MinSDKVersion    int64  `json:"minSdkVersion,omitempty" yaml:"minSdkVersion,omitempty"`
	TargetSDKVersion int64  `json:"targetSdkVersion,omitempty" yaml:"targetSdkVersion,omitempty"`
}

// ParseManifest decodes the binary AndroidManifest.xml b. Only the
// package is required; the other fields are left zero when absent.
func ParseManifest(b []byte) (*Manifest, error) {
	doc, err := axml.Parse(b)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if m.Package, err = doc.Find(axml.ManifestTag, axml.PackageAttribute); err != nil {
		return nil, err
	}

	if m.VersionName, err = doc.Find(axml.ManifestTag, attrVersionName); optional(err) != nil {
		return nil, err
	}

	if m.VersionCode, err = findInt(doc, axml.ManifestTag, attrVersionCode); optional(err) != nil {
		return nil, err
	}

	if m.MinSDKVersion, err = findInt(doc, tagUsesSDK, attrMinSDKVersion); optional(err) != nil {
		return nil, err
	}

	if m.TargetSDKVersion, err = findInt(doc, tagUsesSDK, attrTargetSDKVersion); optional(err) != nil {
		return nil, err
	}

	return m, nil
}

// findInt returns the integer value of attribute attr on the first
// element named tag. Attributes that are not typed as integers are
// treated as absent.
func findInt(doc *axml.Document, tag, attr string) (int64, error) {
	el, err := doc.Element(tag)
	if err != nil {
		return 0, err
	}

	a, err := el.Attribute(attr)
	if err != nil {
		return 0, err
	}

	if i, ok := a.Int(); ok {
		return i, nil
	}

	return 0, axml.ErrAttributeNotFound
}

func optional(err error) error {
	if errors.Is(err, axml.ErrElementNotFound) || errors.Is(err, axml.ErrAttributeNotFound) {
		return nil
	}

	return err
}
