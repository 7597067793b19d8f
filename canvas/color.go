package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings that are not CSS
// colors.
var ErrInvalidColor = errors.New("canvas: invalid color")

// ParseColor parses the CSS color forms a control panel accepts: named
// colors, "transparent", #rgb, #rgba, #rrggbb, #rrggbbaa, rgb() and
// rgba().
func ParseColor(s string) (gg.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "transparent":
		return gg.Transparent, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return parseFunc(s, v)
	}
	if c, ok := colornames.Map[v]; ok {
		return fromStd(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(orig, hex string) (gg.RGBA, error) {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	return gg.Hex(hex), nil
}

func parseFunc(orig, v string) (gg.RGBA, error) {
	open, closing := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if closing < open {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	parts := strings.Split(v[open+1:closing], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		pct := strings.HasSuffix(p, "%")
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		switch {
		case pct:
			f /= 100
		case i < 3:
			f /= 255
		}
		ch[i] = min(max(f, 0), 1)
	}
	return gg.RGBA2(ch[0], ch[1], ch[2], ch[3]), nil
}

func fromStd(c color.Color) gg.RGBA {
	return nrgba(color.NRGBAModel.Convert(c).(color.NRGBA))
}

func nrgba(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
