package droidregexp_test

import (
	"testing"

	"github.com/frantjc/droid/internal/droidregexp"
	"github.com/stretchr/testify/require"
)

func TestIsPackageName(t *testing.T) {
	for _, name := range []string{"com.example.app", "a.b", "org.example_1.App2"} {
		require.True(t, droidregexp.IsPackageName(name), name)
	}

	for _, name := range []string{"", "app", "com..example", "1com.example", "com.example.", "com.ex-ample"} {
		require.False(t, droidregexp.IsPackageName(name), name)
	}
}

func TestIsAPK(t *testing.T) {
	require.True(t, droidregexp.IsAPK("app.apk"))
	require.True(t, droidregexp.IsAPK("/tmp/My App.APK"))
	require.False(t, droidregexp.IsAPK("app.ipa"))
	require.True(t, droidregexp.IsBinaryXML("AndroidManifest.xml"))
	require.False(t, droidregexp.IsBinaryXML("AndroidManifest.xml.bak"))
}
