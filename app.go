package droid

import (
	"errors"
	"fmt"

	"github.com/frantjc/droid/internal/droiderr"
	"github.com/frantjc/droid/internal/droidregexp"
	"github.com/opencontainers/go-digest"
)

type App struct {
	Name             string        `json:"name,omitempty" yaml:"name,omitempty"`
	Package          string        `json:"package,omitempty" yaml:"package,omitempty"`
	VersionName      string        `json:"versionName,omitempty" yaml:"versionName,omitempty"`
	VersionCode      int64         `json:"versionCode,omitempty" yaml:"versionCode,omitempty"`
	MinSDKVersion    int64         `json:"minSdkVersion,omitempty" yaml:"minSdkVersion,omitempty"`
	TargetSDKVersion int64         `json:"targetSdkVersion,omitempty" yaml:"targetSdkVersion,omitempty"`
	Digest           digest.Digest `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func ValidateApp(app *App) error {
	errs := []error{}

	if !droidregexp.IsPackageName(app.Package) {
		errs = append(errs, fmt.Errorf("invalid package name %q", app.Package))
	}

	if app.VersionCode < 0 {
		errs = append(errs, fmt.Errorf("invalid version code %d", app.VersionCode))
	}

	if app.MinSDKVersion > 0 && app.TargetSDKVersion > 0 && app.MinSDKVersion > app.TargetSDKVersion {
		errs = append(errs, fmt.Errorf("min sdk version %d is greater than target sdk version %d", app.MinSDKVersion, app.TargetSDKVersion))
	}

	if app.Digest != "" {
		if err := app.Digest.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("invalid digest %s: %w", app.Digest, err))
		}
	}

	return droiderr.ExitCodeError(errors.Join(errs...), droiderr.ExitCodeInvalid)
}
