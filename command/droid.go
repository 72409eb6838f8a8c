package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/frantjc/droid"
	"github.com/frantjc/droid/android"
	"github.com/frantjc/droid/internal/droiderr"
	"github.com/frantjc/droid/internal/droidregexp"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
)

type options struct {
	bloburlstr      string
	output          string
	concurrency     int
	maxManifestSize int64
}

// NewDroid returns the root command for
// droid which acts as its CLI entrypoint.
func NewDroid() *cobra.Command {
	var (
		opts = &options{}
		cmd  = &cobra.Command{
			Use:   "droid",
			Short: "Read package names and versions out of .apks",
		}
	)

	cmd.PersistentFlags().StringVar(&opts.bloburlstr, "bucket", os.Getenv("DROID_BUCKET"), "blob URL to read .apks from instead of the local filesystem")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, fmt.Sprintf("output format, one of %v", outputs))
	cmd.PersistentFlags().IntVarP(&opts.concurrency, "concurrency", "c", 4, "number of .apks to decode at once")
	cmd.PersistentFlags().Int64Var(&opts.maxManifestSize, "max-manifest-size", android.DefaultMaxManifestSize, "maximum size in bytes of AndroidManifest.xml")

	cmd.AddCommand(newPackage(opts), newGet(opts), newApp(opts))

	return SetCommon(cmd, droid.SemVer())
}

func (o *options) validate(args []string) error {
	errs := []error{}

	if err := validateOutput(o.output); err != nil {
		errs = append(errs, err)
	}

	for _, arg := range args {
		if !droidregexp.IsAPK(arg) && !droidregexp.IsBinaryXML(arg) {
			errs = append(errs, fmt.Errorf("invalid .apk %s", arg))
		}
	}

	return droiderr.ExitCodeError(errors.Join(errs...), droiderr.ExitCodeInvalid)
}

// openDecoders returns an APKDecoder for each of names along with a
// func that closes them and the bucket they read from, if any.
func openDecoders(ctx context.Context, opts *options, names []string) ([]*android.APKDecoder, func() error, error) {
	var (
		log        = droid.LoggerFrom(ctx)
		decoders   = make([]*android.APKDecoder, len(names))
		decoderOps = []android.APKDecoderOpt{android.WithMaxManifestSize(opts.maxManifestSize)}
		bucket     *blob.Bucket
	)

	if opts.bloburlstr != "" {
		log.Info("opening bucket " + opts.bloburlstr)

		var err error
		if bucket, err = blob.OpenBucket(ctx, opts.bloburlstr); err != nil {
			return nil, nil, err
		}

		decoderOps = append(decoderOps, android.WithBucket(bucket))
	}

	for i, name := range names {
		decoders[i] = android.NewAPKDecoder(name, decoderOps...)
	}

	return decoders, func() error {
		errs := []error{}

		for _, decoder := range decoders {
			errs = append(errs, decoder.Close())
		}

		if bucket != nil {
			errs = append(errs, bucket.Close())
		}

		return errors.Join(errs...)
	}, nil
}

type packageResult struct {
	Name    string `json:"name" yaml:"name"`
	Package string `json:"package" yaml:"package"`
}

func newPackage(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "package APK...",
		Short: "Print the package name of each .apk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(args); err != nil {
				return err
			}

			ctx := cmd.Context()

			decoders, closeDecoders, err := openDecoders(ctx, opts, args)
			if err != nil {
				return err
			}
			defer closeDecoders()

			results, err := droid.DecodeEach(ctx, opts.concurrency, decoders, func(ctx context.Context, decoder *android.APKDecoder) (packageResult, error) {
				pkg, err := decoder.PackageName(ctx)
				return packageResult{Name: decoder.Name, Package: pkg}, err
			})
			if err != nil {
				return withExitCode(err)
			}

			rows := [][]string{}
			for _, result := range results {
				if len(results) == 1 {
					rows = append(rows, []string{result.Package})
				} else {
					rows = append(rows, []string{result.Name, result.Package})
				}
			}

			return encode(cmd.OutOrStdout(), opts.output, results, rows)
		},
	}
}

type getResult struct {
	Name      string `json:"name" yaml:"name"`
	Tag       string `json:"tag" yaml:"tag"`
	Attribute string `json:"attribute" yaml:"attribute"`
	Value     string `json:"value" yaml:"value"`
}

func newGet(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get APK TAG ATTRIBUTE",
		Short: "Print the value of an attribute of the first element with the given tag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(args[:1]); err != nil {
				return err
			}

			ctx := cmd.Context()

			decoders, closeDecoders, err := openDecoders(ctx, opts, args[:1])
			if err != nil {
				return err
			}
			defer closeDecoders()

			result := &getResult{Name: args[0], Tag: args[1], Attribute: args[2]}
			if result.Value, err = decoders[0].Find(ctx, result.Tag, result.Attribute); err != nil {
				return withExitCode(err)
			}

			return encode(cmd.OutOrStdout(), opts.output, result, [][]string{{result.Value}})
		},
	}
}

func newApp(opts *options) *cobra.Command {
	var (
		strict bool
		cmd    = &cobra.Command{
			Use:   "app APK...",
			Short: "Print the package, version and digest of each .apk",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := opts.validate(args); err != nil {
					return err
				}

				var (
					ctx = cmd.Context()
					log = droid.LoggerFrom(ctx)
				)

				decoders, closeDecoders, err := openDecoders(ctx, opts, args)
				if err != nil {
					return err
				}
				defer closeDecoders()

				appDecoders := make([]droid.AppDecoder, len(decoders))
				for i, decoder := range decoders {
					appDecoders[i] = decoder
				}

				apps, err := droid.DecodeApps(ctx, opts.concurrency, appDecoders...)
				if err != nil {
					return withExitCode(err)
				}

				rows := [][]string{{"NAME", "PACKAGE", "VERSION", "CODE", "DIGEST"}}
				for _, app := range apps {
					if err := droid.ValidateApp(&app); err != nil {
						if strict {
							return fmt.Errorf("%s: %w", app.Name, err)
						}

						log.Error(err, "invalid app", "name", app.Name)
					}

					rows = append(rows, []string{
						app.Name,
						app.Package,
						app.VersionName,
						strconv.FormatInt(app.VersionCode, 10),
						app.Digest.String(),
					})
				}

				return encode(cmd.OutOrStdout(), opts.output, apps, rows)
			},
		}
	)

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on apps with an invalid package name, version or digest")

	return cmd
}
