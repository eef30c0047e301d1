package weathericons

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/slices"
)

// maxWorkers sets the maximum number of concurrently rendered icons.
const maxWorkers = 20

// Result describes the files produced for one icon.
type Result struct {
	Name    string
	SVGPath string
	PNGPath string
	Backend string
}

// result is passed from the workers back to the collector.
type result struct {
	Result
	err error
}

// Generator writes the icon sources and rasterizes them with a single renderer.
type Generator struct {
	SVGDir   string
	PNGDir   string
	Renderer Renderer
	// Workers is the number of icons processed concurrently. Values below 2 run sequentially.
	Workers int
	// Progress is called after each PNG has been written and verified.
	Progress func(Result)
}

// NewGenerator returns a generator writing into the asset directories under root.
func NewGenerator(root string, r Renderer) *Generator {
	return &Generator{
		SVGDir:   filepath.Join(root, filepath.FromSlash(SVGDir)),
		PNGDir:   filepath.Join(root, filepath.FromSlash(PNGDir)),
		Renderer: r,
		Workers:  1,
	}
}

// Generate writes every icon of the table as SVG and renders it to PNG.
// The first failure aborts the run; icons finished before it are kept.
// The returned results are ordered by icon name.
func (g *Generator) Generate(ctx context.Context) ([]Result, error) {
	if g.Renderer == nil {
		return nil, &BackendError{}
	}
	for _, dir := range []string{g.SVGDir, g.PNGDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("unable to create the output directory: %w", err)
		}
	}

	names := Names()
	workers := g.Workers
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if workers > len(names) {
		workers = len(names)
	}
	if workers < 2 {
		return g.sequential(ctx, names)
	}
	return g.concurrent(ctx, names, workers)
}

func (g *Generator) sequential(ctx context.Context, names []string) ([]Result, error) {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		res, err := g.process(ctx, name)
		if err != nil {
			return results, err
		}
		g.report(res)
		results = append(results, res)
	}
	return results, nil
}

func (g *Generator) concurrent(ctx context.Context, names []string, workers int) ([]Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	ch := make(chan result)
	jobs := produce(ctx, names)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g.consumer(ctx, jobs, ch)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var (
		results  = make([]Result, 0, len(names))
		firstErr error
	)
	for res := range ch {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
				cancel()
			}
			continue
		}
		g.report(res.Result)
		results = append(results, res.Result)
	}

	slices.SortFunc(results, func(a, b Result) bool { return a.Name < b.Name })
	if firstErr != nil {
		return results, firstErr
	}
	if len(results) != len(names) {
		return results, ctx.Err()
	}
	return results, nil
}

// produce sends the icon names on the returned channel until all are sent or ctx is done.
func produce(ctx context.Context, names []string) <-chan string {
	jobs := make(chan string)
	go func() {
		defer close(jobs)
		for _, name := range names {
			select {
			case <-ctx.Done():
				return
			case jobs <- name:
			}
		}
	}()
	return jobs
}

// consumer processes the icon names received on jobs and sends the outcome on res.
func (g *Generator) consumer(ctx context.Context, jobs <-chan string, res chan<- result) {
	for name := range jobs {
		r, err := g.process(ctx, name)

		select {
		case <-ctx.Done():
			return
		case res <- result{Result: r, err: err}:
		}
	}
}

// process writes the SVG source of one icon and renders its PNG.
func (g *Generator) process(ctx context.Context, name string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	icon, ok := Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("unknown icon %q", name)
	}

	svgPath := filepath.Join(g.SVGDir, SVGFile(name))
	if err := os.WriteFile(svgPath, []byte(icon.SVG), 0644); err != nil {
		return Result{}, fmt.Errorf("unable to write %s: %w", SVGFile(name), err)
	}

	pngPath := filepath.Join(g.PNGDir, PNGFile(name))
	err := g.Renderer.Render(ctx, svgPath, pngPath, Size, Size)
	if err == nil {
		err = verifyPNG(pngPath, Size, Size)
	}
	if err != nil {
		// remove the broken image file in case of an error
		if rmErr := os.Remove(pngPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = fmt.Errorf("%w (cleanup: %v)", err, rmErr)
		}
		return Result{}, fmt.Errorf("error rendering %s: %w", PNGFile(name), err)
	}

	return Result{
		Name:    name,
		SVGPath: svgPath,
		PNGPath: pngPath,
		Backend: g.Renderer.Name(),
	}, nil
}

func (g *Generator) report(res Result) {
	if g.Progress != nil {
		g.Progress(res)
	}
}
