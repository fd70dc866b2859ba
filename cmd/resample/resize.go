package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/resample"
	"github.com/gogpu/resample/backend"
	"github.com/gogpu/resample/pixbuf"
)

// resizeOptions holds the flags of the resize command.
type resizeOptions struct {
	width, height int
	filter        resample.Filter
	backend       string
	workers       int
	jobs          int
	box           string
	out           string
	outDir        string
	passOrder     string
}

// resizeFunc scales img to width×height.
type resizeFunc func(img image.Image, width, height int) (image.Image, error)

func newResizeCmd() *cobra.Command {
	o := &resizeOptions{filter: resample.Bicubic}
	cmd := &cobra.Command{
		Use:   "resize [flags] FILE...",
		Short: "Resize image files",
		Long: `Resize image files.

With only --width or --height the other side follows the aspect ratio.
Results are written next to the input as NAME_WxH.EXT unless --out or
--out-dir is given. WebP inputs are written as PNG.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.width, `width`, `W`, 0, `target width (0 keeps the aspect ratio)`)
	f.IntVarP(&o.height, `height`, `H`, 0, `target height (0 keeps the aspect ratio)`)
	f.VarP(&o.filter, `filter`, `f`, `filter: nearest, box, bilinear, hamming, bicubic or lanczos`)
	f.StringVarP(&o.backend, `backend`, `b`, backend.BackendNative, `resize backend (see "backends")`)
	f.IntVar(&o.workers, `workers`, 1, `goroutines per image, native backend only (0 = one per CPU)`)
	f.IntVarP(&o.jobs, `jobs`, `j`, runtime.GOMAXPROCS(0), `images processed concurrently`)
	f.StringVar(&o.box, `box`, ``, `source region "x0,y0,x1,y1", native backend only`)
	f.StringVarP(&o.out, `out`, `o`, ``, `output file (single input only)`)
	f.StringVar(&o.outDir, `out-dir`, ``, `output directory`)
	f.StringVar(&o.passOrder, `pass-order`, `horizontal`, `first pass: horizontal or vertical, native backend only`)
	return cmd
}

func (o *resizeOptions) run(ctx context.Context, stdout io.Writer, files []string) error {
	if o.width < 0 || o.height < 0 || (o.width == 0 && o.height == 0) {
		return errors.Errorf("resize: need a positive --width or --height, got %dx%d", o.width, o.height)
	}
	if o.out != "" && len(files) > 1 {
		return errors.Errorf("resize: --out takes a single input, got %d", len(files))
	}
	box, err := parseBox(o.box)
	if err != nil {
		return err
	}
	resize, done, err := o.resizer(box)
	if err != nil {
		return err
	}
	defer done()

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.jobs, 1))
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, 0)
			}
			dst, size, err := o.process(file, box, resize)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(stdout, "%s -> %s (%dx%d)\n", file, dst, size.X, size.Y)
			return nil
		})
	}
	return g.Wait()
}

// resizer builds the resize function for the selected backend. done
// releases its resources.
func (o *resizeOptions) resizer(box *resample.Region) (resizeFunc, func(), error) {
	if o.backend != backend.BackendNative {
		if box != nil || o.passOrder != "horizontal" || o.workers != 1 {
			return nil, nil, errors.Errorf("resize: --box, --pass-order and --workers need the %s backend", backend.BackendNative)
		}
		r, err := backend.Lookup(o.backend)
		if err != nil {
			return nil, nil, errors.Wrap(err, 0)
		}
		fn := func(img image.Image, w, h int) (image.Image, error) {
			return r.Resize(img, w, h, o.filter)
		}
		return fn, func() {}, nil
	}

	var order resample.PassOrder
	switch o.passOrder {
	case "horizontal":
		order = resample.HorizontalFirst
	case "vertical":
		order = resample.VerticalFirst
	default:
		return nil, nil, errors.Errorf("resize: invalid --pass-order %q", o.passOrder)
	}
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	r := resample.New(resample.WithWorkers(workers), resample.WithPassOrder(order))

	fn := func(img image.Image, w, h int) (image.Image, error) {
		src, err := pixbuf.FromImage(img)
		if err != nil {
			return nil, err
		}
		out, err := r.Apply(src, resample.Request{Width: w, Height: h, Filter: o.filter, Box: box})
		if err != nil {
			return nil, err
		}
		return out.ToImage()
	}
	return fn, r.Close, nil
}

// process resizes one file and returns the output path and size.
func (o *resizeOptions) process(file string, box *resample.Region, resize resizeFunc) (string, image.Point, error) {
	img, _, err := decodeFile(file)
	if err != nil {
		return "", image.Point{}, err
	}

	b := img.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	if box != nil {
		srcW, srcH = box.X1-box.X0, box.Y1-box.Y0
	}
	size := fitSize(srcW, srcH, o.width, o.height)

	out, err := resize(img, size.X, size.Y)
	if err != nil {
		return "", image.Point{}, errors.WrapPrefix(err, file, 0)
	}

	dst := o.outputPath(file, size)
	if err := encodeFile(dst, out); err != nil {
		return "", image.Point{}, err
	}
	return dst, size, nil
}

// outputPath names the result of resizing file to size.
func (o *resizeOptions) outputPath(file string, size image.Point) string {
	if o.out != "" {
		return o.out
	}
	ext := filepath.Ext(file)
	if !canEncode(ext) {
		ext = ".png"
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	name := fmt.Sprintf("%s_%dx%d%s", base, size.X, size.Y, ext)

	dir := o.outDir
	if dir == "" {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, name)
}

// fitSize returns the target size for a srcW×srcH source area, which must
// be positive. A zero width or height is derived from the other side,
// keeping the aspect ratio, and clamped to [1, math.MaxInt32].
func fitSize(srcW, srcH float64, width, height int) image.Point {
	switch {
	case width > 0 && height > 0:
		return image.Pt(width, height)
	case width > 0:
		return image.Pt(width, scaledSide(float64(width)*srcH/srcW))
	default:
		return image.Pt(scaledSide(float64(height)*srcW/srcH), height)
	}
}

func scaledSide(v float64) int {
	return int(min(max(math.Round(v), 1), math.MaxInt32))
}

// parseBox parses "x0,y0,x1,y1". An empty string means no box.
func parseBox(s string) (*resample.Region, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, errors.Errorf(`resize: --box %q is not "x0,y0,x1,y1"`, s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Errorf("resize: --box %q: %v", s, err)
		}
		v[i] = f
	}
	if !(v[2] > v[0]) || !(v[3] > v[1]) {
		return nil, errors.Errorf("resize: --box %q is empty", s)
	}
	return &resample.Region{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
}
