// Command resample resizes image files with the resample engine or one of
// the comparison backends.
//
// Usage:
//
//	resample resize -W 640 -f lanczos photo.jpg
//	resample resize -H 256 -b imaging -j 8 --out-dir thumbs *.png
//	resample info --cpu photo.jpg
//	resample filters
//	resample backends
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/gogpu/resample"
	_ "github.com/gogpu/resample/backend/bild"
	_ "github.com/gogpu/resample/backend/gift"
	_ "github.com/gogpu/resample/backend/imaging"
	_ "github.com/gogpu/resample/backend/nfnt"
	_ "github.com/gogpu/resample/backend/rez"
	_ "github.com/gogpu/resample/backend/xdraw"
)

// rootOptions holds the persistent flags shared by all commands.
type rootOptions struct {
	debug    bool
	logLevel string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err, opts.debug)
		return 1
	}
	return 0
}

// report prints err, with its stack trace when debug is set and err
// carries one.
func report(w io.Writer, err error, debug bool) {
	var stackErr *errors.Error
	if debug && errors.As(err, &stackErr) {
		fmt.Fprintln(w, stackErr.ErrorStack())
		return
	}
	fmt.Fprintln(w, "resample:", err)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           filepath.Base(os.Args[0]),
		Short:         "resample resizes raster images",
		Long:          "resample resizes raster images with Pillow-compatible filters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, `debug`, false, `print error stack traces`)
	cmd.PersistentFlags().StringVar(&opts.logLevel, `log-level`, `warn`, `log level: debug, info, warn or error`)

	cmd.AddCommand(
		newResizeCmd(),
		newInfoCmd(),
		newFiltersCmd(),
		newBackendsCmd(),
	)
	return cmd
}

// setupLogging routes library logs to w at the given level.
func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.Errorf("invalid --log-level %q: %v", level, err)
	}
	resample.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
