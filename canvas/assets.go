package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"sync"

	"github.com/gogpu/dial"
	"github.com/gogpu/gg"
)

// ErrUnknownAsset is returned when a loader cannot resolve a reference.
var ErrUnknownAsset = errors.New("canvas: unknown asset")

// AssetLoader resolves panel image references to images.
type AssetLoader interface {
	Load(ref dial.AssetRef) (image.Image, error)
}

// DirLoader loads panel images from a directory. PNG, JPEG and WebP are
// supported.
type DirLoader struct {
	Dir string
}

// Load implements AssetLoader.
func (l DirLoader) Load(ref dial.AssetRef) (image.Image, error) {
	name := string(ref)
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, name)
	}
	buf, err := gg.LoadImage(filepath.Join(l.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("canvas: load %s: %w", name, err)
	}
	return buf.ToStdImage(), nil
}

// SyntheticLoader draws panel images for the built-in primary colors: a
// conic sweep from a light tint to the full color. It needs no files and
// serves hosts that ship without artwork.
type SyntheticLoader struct {
	// Size is the edge length of the generated square images.
	// Zero means 512.
	Size int
}

// Load implements AssetLoader.
func (l SyntheticLoader) Load(ref dial.AssetRef) (image.Image, error) {
	for _, c := range dial.PrimaryColors {
		if asset, _ := c.Asset(); asset == ref {
			return l.panel(c)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, ref)
}

func (l SyntheticLoader) panel(c dial.PrimaryColor) (image.Image, error) {
	size := l.Size
	if size <= 0 {
		size = 512
	}
	base, err := ParseColor(c.String())
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(size, size)
	defer dc.Close()

	mid := float64(size) / 2
	sweep := gg.NewSweepGradientBrush(mid, mid, 0).
		AddColorStop(0, base.Lerp(gg.White, 0.6)).
		AddColorStop(0.5, base.Lerp(gg.White, 0.2)).
		AddColorStop(1, base)
	dc.SetFillBrush(sweep)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	// Subtle rim so the arc edge reads against light backgrounds.
	rim := gg.NewRadialGradientBrush(mid, mid, mid*0.85, mid*math.Sqrt2).
		AddColorStop(0, gg.Transparent).
		AddColorStop(1, gg.RGBA2(base.R*0.6, base.G*0.6, base.B*0.6, 0.5))
	dc.SetFillBrush(rim)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// CachedLoader memoizes another loader. It is safe for concurrent use.
type CachedLoader struct {
	Loader AssetLoader

	mu    sync.Mutex
	cache map[dial.AssetRef]image.Image
}

// Load implements AssetLoader. Failures are not cached.
func (l *CachedLoader) Load(ref dial.AssetRef) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.cache[ref]; ok {
		return img, nil
	}
	img, err := l.Loader.Load(ref)
	if err != nil {
		return nil, err
	}
	if l.cache == nil {
		l.cache = make(map[dial.AssetRef]image.Image)
	}
	l.cache[ref] = img
	return img, nil
}
