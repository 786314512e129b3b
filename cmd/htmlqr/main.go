// htmlqr packs an HTML file into a QR code.
//
// The file is minified, wrapped in a data:text/html URL and rendered as
// a PNG QR code in the current directory.
//
// Usage:
//
//	htmlqr [--verify] <your_file.html>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	htmlqr "github.com/porticus-lab/go-html-qr"
)

var errUsage = errors.New("an input HTML file must be provided")

// sourceMinifier is the minification step of the pipeline.
type sourceMinifier interface {
	Minify(src string) (string, error)
}

var newMinifier = func() sourceMinifier { return htmlqr.NewMinifier() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "Error: An input HTML file must be provided.")
		fmt.Fprintln(stderr, "Usage: htmlqr <your_file.html>")
	default:
		fmt.Fprintf(stderr, "\nAn error occurred during the build process: %v\n", err)
		if errors.Is(err, htmlqr.ErrPayloadTooLarge) {
			fmt.Fprintln(stderr, "--> Failure cause: The final Data URL is still too large to fit in a QR code.")
		}
	}
	return 1
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "htmlqr <your_file.html>",
		Short: "Pack an HTML file into a QR code",
		Long: `htmlqr minifies an HTML file, encodes it as a data:text/html URL and
writes that URL as a QR code to ` + htmlqr.DefaultOutputFile + ` in the current directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := builder{stdout: stdout, stderr: stderr, output: htmlqr.DefaultOutputFile}
			if err := b.build(args[0]); err != nil {
				return err
			}
			if verify {
				return b.verify(cmd.Context())
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&verify, "verify", false, "open the data URL in headless Chrome after writing the QR code")
	return cmd
}

// builder runs the pipeline and prints progress.
type builder struct {
	stdout io.Writer
	stderr io.Writer
	output string

	dataURL string
}

func (b *builder) build(input string) error {
	fmt.Fprintln(b.stdout, "[1/3] Reading and aggressively minifying source file...")
	src, err := htmlqr.ReadSource(input)
	if err != nil {
		return err
	}
	minified, err := newMinifier().Minify(src)
	if err != nil {
		return err
	}

	fmt.Fprintln(b.stdout, "[2/3] URL-encoding and creating Data URL...")
	b.dataURL = htmlqr.DataURL(minified)

	fmt.Fprintf(b.stdout, "Final payload size for QR Code: %d characters.\n", len(b.dataURL))
	if htmlqr.Oversize(b.dataURL) {
		fmt.Fprintln(b.stderr, "\nWarning: Payload is very large. QR code will be extremely dense and may be difficult to scan.")
	}

	fmt.Fprintln(b.stdout, "[3/3] Creating QR code image...")
	res, err := htmlqr.Encode(b.dataURL, nil)
	if err != nil {
		return err
	}
	if err := res.WriteToFile(b.output, 0o644); err != nil {
		return fmt.Errorf("htmlqr: writing %s: %w", b.output, err)
	}

	fmt.Fprintf(b.stdout, "\nProcess complete. QR code saved to %q\n", b.output)
	return nil
}

func (b *builder) verify(ctx context.Context) error {
	fmt.Fprintln(b.stdout, "Verifying the Data URL in headless Chrome...")

	opts := []htmlqr.Option{htmlqr.WithAutoDownload()}
	if os.Geteuid() == 0 {
		opts = append(opts, htmlqr.WithNoSandbox())
	}
	v, err := htmlqr.NewVerifier(opts...)
	if err != nil {
		return err
	}
	defer v.Close()

	rep, err := v.Verify(ctx, b.dataURL)
	if err != nil {
		return err
	}
	fmt.Fprintf(b.stdout, "Rendered %q with %d characters of text.\n", rep.Title, rep.TextLength)
	return nil
}
