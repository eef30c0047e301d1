package weathericons

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-shellwords"
)

// DefaultConverter is the command line tool preferred for rasterizing the icons.
const DefaultConverter = "rsvg-convert"

// Renderer rasterizes an SVG file into a PNG file of the requested size,
// preserving the alpha channel.
type Renderer interface {
	// Name identifies the backend in the progress output.
	Name() string
	// Available reports why the backend cannot be used, or nil if it can.
	Available() error
	Render(ctx context.Context, svgPath, pngPath string, width, height int) error
}

var (
	_ Renderer = (*ExternalRenderer)(nil)
	_ Renderer = (*NativeRenderer)(nil)
)

// ExternalRenderer shells out to an rsvg-convert compatible command line converter.
type ExternalRenderer struct {
	// Command is the program followed by any extra arguments placed before the size flags.
	Command []string
}

// NewExternalRenderer splits the command line using shell quoting rules.
// An empty command line selects DefaultConverter.
func NewExternalRenderer(cmdline string) (*ExternalRenderer, error) {
	if cmdline == "" {
		cmdline = DefaultConverter
	}
	args, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("invalid converter command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("invalid converter command %q: no program given", cmdline)
	}
	return &ExternalRenderer{Command: args}, nil
}

// Name returns the base name of the converter program.
func (r *ExternalRenderer) Name() string {
	if len(r.Command) == 0 {
		return DefaultConverter
	}
	return filepath.Base(r.Command[0])
}

// Available checks whether the converter executable can be located.
func (r *ExternalRenderer) Available() error {
	if len(r.Command) == 0 {
		return errors.New("no converter command configured")
	}
	if _, err := exec.LookPath(r.Command[0]); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", r.Command[0], err)
	}
	return nil
}

// Render invokes the converter as: <command> -w <width> -h <height> <svg> -o <png>.
func (r *ExternalRenderer) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	if len(r.Command) == 0 {
		return errors.New("no converter command configured")
	}
	args := make([]string, 0, len(r.Command)+6)
	args = append(args, r.Command[1:]...)
	args = append(args,
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
		svgPath,
		"-o", pngPath,
	)

	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		out = bytes.TrimSpace(out)
		if len(out) == 0 {
			return fmt.Errorf("%s: %w", r.Name(), err)
		}
		return fmt.Errorf("%s: %w\n%s", r.Name(), err, out)
	}
	return nil
}

// NativeRenderer rasterizes the icons in process, without any external tool.
// It is compiled out when building with the nonative tag.
type NativeRenderer struct{}

// Name returns the name of the SVG library doing the work.
func (*NativeRenderer) Name() string { return "oksvg" }

// Available reports an error if the renderer was excluded from the build.
func (*NativeRenderer) Available() error {
	if !nativeBuilt {
		return errors.New("built with the nonative tag")
	}
	return nil
}

// Render draws the SVG onto a transparent canvas and encodes it as PNG.
func (r *NativeRenderer) Render(ctx context.Context, svgPath, pngPath string, width, height int) error {
	if err := r.Available(); err != nil {
		return fmt.Errorf("%s: %w", r.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(svgPath)
	if err != nil {
		return fmt.Errorf("unable to open the SVG file: %w", err)
	}
	defer f.Close()

	img, err := rasterize(f, width, height)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Name(), err)
	}
	if err := imaging.Save(img, pngPath); err != nil {
		return fmt.Errorf("unable to save the PNG file: %w", err)
	}
	return nil
}
