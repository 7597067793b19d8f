package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/dial"
	"github.com/gogpu/dial/anim"
	"github.com/gogpu/dial/canvas"
)

type renderOptions struct {
	props  string
	out    string
	width  float64
	height float64
	frames int
	fps    float64
	assets string
	jobs   int
}

func (a *app) newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render chart props to PNG",
		Long: `Render reads chart props (width, height, formData, queriesData) from a
JSON, YAML or TOML file and writes the dial as PNG.

With --frames or --fps the entry animation is written as a numbered
sequence next to --out: dial.png becomes dial-000.png, dial-001.png, ...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("assets") {
				opts.assets = a.v.GetString("render.assets")
			}
			return a.render(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.props, "props", "", "chart props file")
	f.StringVarP(&opts.out, "out", "o", "dial.png", "output PNG file")
	f.Float64Var(&opts.width, "width", 0, "override the props width")
	f.Float64Var(&opts.height, "height", 0, "override the props height")
	f.IntVar(&opts.frames, "frames", 1, "number of animation frames")
	f.Float64Var(&opts.fps, "fps", 0, "derive the frame count from the animation duration")
	f.StringVar(&opts.assets, "assets", "", "directory with panel images (default: synthetic panels)")
	f.IntVar(&opts.jobs, "jobs", runtime.GOMAXPROCS(0), "frames rasterized in parallel")
	_ = cmd.MarkFlagRequired("props")
	return cmd
}

func (a *app) render(ctx context.Context, opts renderOptions) error {
	props, err := loadProps(opts.props)
	if err != nil {
		return err
	}
	if opts.width > 0 {
		props.Width = opts.width
	}
	if opts.height > 0 {
		props.Height = opts.height
	}

	res, err := dial.Transform(props)
	if err != nil {
		return err
	}
	scene := res.Scene()
	if scene.IsEmpty() {
		a.log.Warn().Float64("width", props.Width).Float64("height", props.Height).
			Msg("nothing to draw")
	}

	var animator anim.Animator
	tr := animator.Start(scene)
	n := frameCount(opts.frames, opts.fps, tr.Duration())

	frames := make([]*dial.Scene, n)
	if n == 1 {
		frames[0], _ = tr.Final()
	} else {
		for i := range n {
			elapsed := time.Duration(float64(tr.Duration()) * float64(i) / float64(n-1))
			frames[i], _, _ = tr.Frame(elapsed)
		}
	}

	r := &canvas.Renderer{Assets: newAssetLoader(opts.assets)}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, s := range frames {
		path := framePath(opts.out, i, n)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePNG(r, s, path)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.log.Info().Str("out", opts.out).Int("frames", n).Float64("value", res.Value).
		Msg("rendered")
	return nil
}

func newAssetLoader(dir string) canvas.AssetLoader {
	if dir == "" {
		return &canvas.CachedLoader{Loader: canvas.SyntheticLoader{}}
	}
	return &canvas.CachedLoader{Loader: canvas.DirLoader{Dir: dir}}
}

// assetSource identifies the artwork newAssetLoader(dir) draws with.
func assetSource(dir string) string {
	if dir == "" {
		return "synthetic"
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return "dir:" + dir
}

// frameCount resolves --frames and --fps. fps wins when set.
func frameCount(frames int, fps float64, d time.Duration) int {
	if fps > 0 && !math.IsInf(fps, 0) {
		return int(math.Ceil(d.Seconds()*fps)) + 1
	}
	return max(frames, 1)
}

// framePath numbers out for sequences: dial.png -> dial-007.png.
func framePath(out string, i, n int) string {
	if n <= 1 {
		return out
	}
	ext := filepath.Ext(out)
	width := len(fmt.Sprint(n - 1))
	return fmt.Sprintf("%s-%0*d%s", strings.TrimSuffix(out, ext), max(width, 3), i, ext)
}

func writePNG(r *canvas.Renderer, s *dial.Scene, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(f, s); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
