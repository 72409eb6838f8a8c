package android

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/frantjc/droid"
	"github.com/frantjc/droid/axml"
	"github.com/frantjc/droid/internal/droidregexp"
	"github.com/opencontainers/go-digest"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const (
	// DefaultMaxManifestSize caps how much of an archive's manifest
	// entry is read into memory.
	DefaultMaxManifestSize = 16 << 20
)

var (
	// ErrManifestNotFound is returned when an archive has no
	// AndroidManifest.xml entry.
	ErrManifestNotFound = errors.New(AndroidManifestName + " not found in .apk")
)

// APKDecoder reads the binary AndroidManifest.xml out of an .apk.
// Name may also refer to a bare binary AndroidManifest.xml. An
// APKDecoder caches what it reads and is not safe for concurrent use.
type APKDecoder struct {
	Name string

	bucket          *blob.Bucket
	maxManifestSize int64
	decoded         bool
	manifestXML     []byte
	digest          digest.Digest
	manifest        *Manifest
}

type APKDecoderOpt func(*APKDecoder)

// WithBucket makes the APKDecoder read Name as a key in bucket
// instead of as a path on the local filesystem.
func WithBucket(bucket *blob.Bucket) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.bucket = bucket
	}
}

func WithMaxManifestSize(n int64) APKDecoderOpt {
	return func(a *APKDecoder) {
		if n > 0 {
			a.maxManifestSize = n
		}
	}
}

func NewAPKDecoder(name string, opts ...APKDecoderOpt) *APKDecoder {
	ad := &APKDecoder{Name: name, maxManifestSize: DefaultMaxManifestSize}

	for _, opt := range opts {
		opt(ad)
	}

	return ad
}

func (a *APKDecoder) decode(ctx context.Context) error {
	if a.decoded {
		return nil
	}

	log := droid.LoggerFrom(ctx).WithValues("name", a.Name)

	var (
		ra   io.ReaderAt
		size int64
	)
	if a.bucket != nil {
		log.V(1).Info("reading from bucket")

		b, err := a.bucket.ReadAll(ctx, a.Name)
		if gcerrors.Code(err) == gcerrors.NotFound {
			return fmt.Errorf("%s: %w", a.Name, fs.ErrNotExist)
		} else if err != nil {
			return err
		}

		a.digest = digest.FromBytes(b)
		ra, size = bytes.NewReader(b), int64(len(b))
	} else {
		log.V(1).Info("reading from file")

		f, err := os.Open(a.Name)
		if err != nil {
			return err
		}
		defer f.Close()

		fi, err := f.Stat()
		if err != nil {
			return err
		}

		if a.digest, err = digest.FromReader(f); err != nil {
			return err
		}

		ra, size = f, fi.Size()
	}

	var err error
	if droidregexp.IsBinaryXML(filepath.Base(a.Name)) {
		a.manifestXML, err = a.readAll(io.NewSectionReader(ra, 0, size))
	} else {
		a.manifestXML, err = a.readManifestEntry(ra, size)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}

	log.V(1).Info("read manifest", "size", len(a.manifestXML), "digest", a.digest)
	a.decoded = true

	return nil
}

func (a *APKDecoder) readManifestEntry(ra io.ReaderAt, size int64) ([]byte, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, err
	}

	f, err := zr.Open(AndroidManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrManifestNotFound
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return a.readAll(f)
}

func (a *APKDecoder) readAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, a.maxManifestSize+1))
	if err != nil {
		return nil, err
	}

	if int64(len(b)) > a.maxManifestSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", AndroidManifestName, a.maxManifestSize)
	}

	return b, nil
}

// ManifestXML returns the raw binary AndroidManifest.xml.
func (a *APKDecoder) ManifestXML(ctx context.Context) ([]byte, error) {
	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	return a.manifestXML, nil
}

// Digest returns the digest of the whole archive.
func (a *APKDecoder) Digest(ctx context.Context) (digest.Digest, error) {
	if err := a.decode(ctx); err != nil {
		return "", err
	}

	return a.digest, nil
}

// Find returns the string value of attribute attr on the first element
// named tag in the manifest.
func (a *APKDecoder) Find(ctx context.Context, tag, attr string) (string, error) {
	if err := a.decode(ctx); err != nil {
		return "", err
	}

	value, err := axml.Find(a.manifestXML, tag, attr)
	if err != nil {
		return "", fmt.Errorf("%s: %w", a.Name, err)
	}

	return value, nil
}

func (a *APKDecoder) PackageName(ctx context.Context) (string, error) {
	return a.Find(ctx, axml.ManifestTag, axml.PackageAttribute)
}

func (a *APKDecoder) Manifest(ctx context.Context) (*Manifest, error) {
	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	if a.manifest != nil {
		return a.manifest, nil
	}

	manifest, err := ParseManifest(a.manifestXML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Name, err)
	}

	a.manifest = manifest

	return a.manifest, nil
}

var (
	_ droid.AppDecoder = &APKDecoder{}
)

func (a *APKDecoder) App(ctx context.Context) (*droid.App, error) {
	manifest, err := a.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	return &droid.App{
		Name:             filepath.Base(a.Name),
		Package:          manifest.Package,
		VersionName:      manifest.VersionName,
		VersionCode:      manifest.VersionCode,
		MinSDKVersion:    manifest.MinSDKVersion,
		TargetSDKVersion: manifest.TargetSDKVersion,
		Digest:           a.digest,
	}, nil
}

// Close drops everything the APKDecoder has read.
func (a *APKDecoder) Close() error {
	a.decoded = false
	a.manifestXML = nil
	a.digest = ""
	a.manifest = nil

	return nil
}
