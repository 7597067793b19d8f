package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/dial"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultSegmentsPerRadian is the arc flattening density used when a
// Renderer does not set one.
const DefaultSegmentsPerRadian = 24

var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gobold.TTF)
})

// Renderer paints dial scenes with gogpu/gg on the CPU.
type Renderer struct {
	// Assets resolves panel images. Nil means SyntheticLoader.
	Assets AssetLoader
	// Font is the label font. Nil means Go Bold.
	Font *text.FontSource
	// Background fills the canvas before the scene. The zero value leaves
	// it transparent.
	Background gg.RGBA
	// SegmentsPerRadian controls arc flattening.
	SegmentsPerRadian float64
}

// Render rasterizes s into a new image the size of the scene.
func (r *Renderer) Render(s *dial.Scene) (image.Image, error) {
	if s == nil {
		return nil, errors.New("canvas: nil scene")
	}
	w, h := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("canvas: scene has no area (%vx%v)", s.Width, s.Height)
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()
	if err := r.Draw(dc, s); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders s and writes it as PNG.
func (r *Renderer) EncodePNG(w io.Writer, s *dial.Scene) error {
	dc := gg.NewContext(max(1, int(math.Ceil(s.Width))), max(1, int(math.Ceil(s.Height))))
	defer dc.Close()
	if err := r.Draw(dc, s); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Draw paints s onto dc.
func (r *Renderer) Draw(dc *gg.Context, s *dial.Scene) error {
	if r.Background.A > 0 {
		dc.ClearWithColor(r.Background)
	}
	if s.IsEmpty() {
		return nil
	}
	p := painter{r: r, dc: dc, scaled: make(map[scaledKey]*image.NRGBA)}
	return p.group(s.Root)
}

type scaledKey struct {
	ref  dial.AssetRef
	w, h int
}

// painter holds the per-call state of one Draw.
type painter struct {
	r      *Renderer
	dc     *gg.Context
	scaled map[scaledKey]*image.NRGBA
}

func (p *painter) group(g dial.Group) error {
	for _, n := range g.Children {
		var err error
		switch n := n.(type) {
		case dial.Group:
			err = p.group(n)
		case dial.ClippedImage:
			err = p.clippedImage(n)
		case dial.Circle:
			err = p.circle(n)
		case dial.Text:
			err = p.label(n)
		default:
			err = fmt.Errorf("canvas: unsupported node %T", n)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *painter) clippedImage(n dial.ClippedImage) error {
	var outline []gg.Point
	switch c := n.Clip.(type) {
	case dial.Sector:
		spr := p.r.SegmentsPerRadian
		if spr <= 0 {
			spr = DefaultSegmentsPerRadian
		}
		outline = dial.SectorOutline(c, spr)
	case dial.Polygon:
		outline = c.Points
	default:
		return fmt.Errorf("canvas: unsupported clip %T", n.Clip)
	}

	b := n.Bounds
	iw, ih := int(math.Round(b.Width)), int(math.Round(b.Height))
	if iw <= 0 || ih <= 0 || len(outline) < 3 {
		return nil
	}
	img, err := p.image(n.Image, iw, ih)
	if err != nil {
		return err
	}

	p.dc.SetFillPattern(&imagePattern{
		img:    img,
		origin: image.Pt(int(math.Round(b.X)), int(math.Round(b.Y))),
	})
	p.dc.MoveTo(outline[0].X, outline[0].Y)
	for _, pt := range outline[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
	return p.dc.Fill()
}

// image returns the asset scaled to w×h, scaling once per draw.
func (p *painter) image(ref dial.AssetRef, w, h int) (*image.NRGBA, error) {
	key := scaledKey{ref: ref, w: w, h: h}
	if img, ok := p.scaled[key]; ok {
		return img, nil
	}
	loader := p.r.Assets
	if loader == nil {
		loader = SyntheticLoader{}
	}
	src, err := loader.Load(ref)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	p.scaled[key] = dst
	return dst, nil
}

func (p *painter) circle(n dial.Circle) error {
	if n.Radius <= 0 {
		return nil
	}
	if n.Shadow.Blur > 0 && n.Shadow.Color != "" {
		sc, err := ParseColor(n.Shadow.Color)
		if err != nil {
			return err
		}
		cx, cy := n.Center.X+n.Shadow.OffsetX, n.Center.Y+n.Shadow.OffsetY
		outer := n.Radius + n.Shadow.Blur
		glow := gg.NewRadialGradientBrush(cx, cy, 0, outer).
			AddColorStop(0, sc).
			AddColorStop(n.Radius/outer, gg.RGBA2(sc.R, sc.G, sc.B, sc.A*0.6)).
			AddColorStop(1, gg.RGBA2(sc.R, sc.G, sc.B, 0))
		p.dc.SetFillBrush(glow)
		p.dc.DrawCircle(cx, cy, outer)
		if err := p.dc.Fill(); err != nil {
			return err
		}
	}

	fill, err := ParseColor(n.Fill)
	if err != nil {
		return err
	}
	p.dc.SetFillBrush(gg.Solid(fill))
	p.dc.DrawCircle(n.Center.X, n.Center.Y, n.Radius)
	return p.dc.Fill()
}

func (p *painter) label(n dial.Text) error {
	if n.Content == "" || n.Opacity <= 0 || n.Style.FontSize <= 0 {
		return nil
	}
	src := p.r.Font
	if src == nil {
		var err error
		if src, err = defaultFont(); err != nil {
			return fmt.Errorf("canvas: load default font: %w", err)
		}
	}
	c, err := ParseColor(n.Style.Fill)
	if err != nil {
		return err
	}
	c.A *= min(n.Opacity, 1)

	ax, ay := anchor(n.Style.Align, n.Style.VerticalAlign)
	p.dc.SetFont(src.Face(n.Style.FontSize))
	p.dc.SetRGBA(c.R, c.G, c.B, c.A)
	p.dc.DrawStringAnchored(n.Content, n.Position.X, n.Position.Y, ax, ay)
	return nil
}

// anchor converts CSS-like alignment to gg anchor fractions.
func anchor(align, valign string) (ax, ay float64) {
	switch align {
	case "center":
		ax = 0.5
	case "right", "end":
		ax = 1
	}
	switch valign {
	case "middle":
		ay = 0.5
	case "top":
		ay = 1
	}
	return ax, ay
}

// imagePattern samples a pre-scaled image placed at origin and is
// transparent outside it.
type imagePattern struct {
	img    *image.NRGBA
	origin image.Point
}

// ColorAt implements gg.Pattern.
func (ip *imagePattern) ColorAt(x, y float64) gg.RGBA {
	px := int(math.Floor(x)) - ip.origin.X
	py := int(math.Floor(y)) - ip.origin.Y
	if !image.Pt(px, py).In(ip.img.Rect) {
		return gg.Transparent
	}
	return nrgba(ip.img.NRGBAAt(px, py))
}
