package android_test

import (
	_ "embed"
	"testing"

	"github.com/frantjc/droid/android"
	"github.com/frantjc/droid/axml"
	"github.com/frantjc/droid/axml/axmltest"
	"github.com/stretchr/testify/require"
)

var (
	//go:embed testdata/AndroidManifest.xml
	compiledManifest []byte
)

func TestParseCompiledManifest(t *testing.T) {
	manifest, err := android.ParseManifest(compiledManifest)
	require.NoError(t, err)
	require.Equal(t, &android.Manifest{
		Package:          "com.example.fixture",
		VersionName:      "1.0",
		VersionCode:      7,
		MinSDKVersion:    21,
		TargetSDKVersion: 34,
	}, manifest)

	pkg, err := axml.PackageName(compiledManifest)
	require.NoError(t, err)
	require.Equal(t, "com.example.fixture", pkg)

	label, err := axml.Find(compiledManifest, "application", "label")
	require.NoError(t, err)
	require.Equal(t, "Fixture", label)
}

func TestParseManifest(t *testing.T) {
	manifest, err := android.ParseManifest(fullManifest())
	require.NoError(t, err)
	require.Equal(t, "com.example.app", manifest.Package)
	require.Equal(t, int64(34), manifest.TargetSDKVersion)

	t.Run("String typed version code is ignored", func(t *testing.T) {
		b := axmltest.Manifest(true, "package", "com.example.app", "versionCode", "42")

		manifest, err := android.ParseManifest(b)
		require.NoError(t, err)
		require.Zero(t, manifest.VersionCode)
	})

	t.Run("Not binary XML", func(t *testing.T) {
		_, err := android.ParseManifest([]byte("<manifest/>"))
		require.ErrorIs(t, err, axml.ErrNotBinaryXML)
	})
}
