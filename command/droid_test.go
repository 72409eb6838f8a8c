package command_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frantjc/droid"
	"github.com/frantjc/droid/android"
	"github.com/frantjc/droid/axml/axmltest"
	"github.com/frantjc/droid/command"
	"github.com/frantjc/droid/internal/droiderr"
	xos "github.com/frantjc/x/os"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	_ "gocloud.dev/blob/fileblob"
)

func writeAPK(t *testing.T, dir, name string, manifest []byte) string {
	t.Helper()

	var (
		buf = new(bytes.Buffer)
		zw  = zip.NewWriter(buf)
	)

	if manifest != nil {
		w, err := zw.Create(android.AndroidManifestName)
		require.NoError(t, err)

		_, err = w.Write(manifest)
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	name = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(name, buf.Bytes(), 0o600))

	return name
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var (
		out = new(bytes.Buffer)
		cmd = command.NewDroid()
	)

	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestPackage(t *testing.T) {
	var (
		dir = t.TempDir()
		one = writeAPK(t, dir, "one.apk", axmltest.Manifest(true, "package", "com.example.one"))
		two = writeAPK(t, dir, "two.apk", axmltest.Manifest(false, "package", "com.example.two"))
	)

	t.Run("Single", func(t *testing.T) {
		out, err := run(t, "package", one)
		require.NoError(t, err)
		require.Equal(t, "com.example.one\n", out)
	})

	t.Run("Many", func(t *testing.T) {
		out, err := run(t, "package", "-c", "1", one, two)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		require.Equal(t, []string{one, "com.example.one"}, strings.Fields(lines[0]))
		require.Equal(t, []string{two, "com.example.two"}, strings.Fields(lines[1]))
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := run(t, "package", "-o", "json", one)
		require.NoError(t, err)

		results := []map[string]string{}
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		require.Equal(t, []map[string]string{{"name": one, "package": "com.example.one"}}, results)
	})

	t.Run("Bucket", func(t *testing.T) {
		out, err := run(t, "package", "--bucket", "file://"+filepath.ToSlash(dir), "two.apk")
		require.NoError(t, err)
		require.Equal(t, "com.example.two\n", out)
	})
}

func TestPackageExitCodes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		apk      string
		exitCode int
	}{
		{"not binary xml", writeAPK(t, dir, "text.apk", []byte(`<manifest package="com.example.app"/>`)), command.ExitCodeNotBinaryXML},
		{"no string pool", writeAPK(t, dir, "nopool.apk", axmltest.Document(
			axmltest.StartElement(0),
			axmltest.StringPool([]string{"manifest"}, true),
		)), command.ExitCodeStringPoolMissing},
		{"no manifest element", writeAPK(t, dir, "activity.apk", axmltest.Document(
			axmltest.StringPool([]string{"activity"}, true),
			axmltest.StartElement(0),
		)), command.ExitCodeElementNotFound},
		{"no package attribute", writeAPK(t, dir, "nopkg.apk", axmltest.Manifest(true, "versionName", "1.0")), command.ExitCodeAttributeNotFound},
		{"no manifest entry", writeAPK(t, dir, "empty.apk", nil), command.ExitCodeManifestNotFound},
		{"not an apk", filepath.Join(dir, "app.ipa"), droiderr.ExitCodeInvalid},
		{"not an apk or manifest", filepath.Join(dir, "bad.txt"), droiderr.ExitCodeInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, "package", tc.apk)
			require.Error(t, err)
			require.Equal(t, tc.exitCode, xos.ErrorExitCode(err))
		})
	}
}

func TestGet(t *testing.T) {
	apk := writeAPK(t, t.TempDir(), "app.apk", axmltest.Manifest(true, "package", "com.example.app", "versionName", "2.0.1"))

	out, err := run(t, "get", apk, "manifest", "versionName")
	require.NoError(t, err)
	require.Equal(t, "2.0.1\n", out)

	_, err = run(t, "get", apk, "application", "label")
	require.Equal(t, command.ExitCodeElementNotFound, xos.ErrorExitCode(err))
}

func TestApp(t *testing.T) {
	var (
		dir = t.TempDir()
		apk = writeAPK(t, dir, "app.apk", axmltest.Manifest(true, "package", "com.example.app", "versionName", "2.0.1"))
		bad = writeAPK(t, dir, "bad.apk", axmltest.Manifest(true, "package", "not-a-package"))
	)

	out, err := run(t, "app", "-o", "yaml", apk)
	require.NoError(t, err)

	apps := []droid.App{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &apps))
	require.Len(t, apps, 1)
	require.Equal(t, "app.apk", apps[0].Name)
	require.Equal(t, "com.example.app", apps[0].Package)
	require.Equal(t, "2.0.1", apps[0].VersionName)
	require.NoError(t, apps[0].Digest.Validate())

	_, err = run(t, "app", bad)
	require.NoError(t, err)

	_, err = run(t, "app", "--strict", bad)
	require.Equal(t, droiderr.ExitCodeInvalid, xos.ErrorExitCode(err))
}

func TestInvalidOutput(t *testing.T) {
	apk := writeAPK(t, t.TempDir(), "app.apk", axmltest.Manifest(true, "package", "com.example.app"))

	_, err := run(t, "package", "-o", "xml", apk)
	require.Equal(t, droiderr.ExitCodeInvalid, xos.ErrorExitCode(err))
}
