package dial

import (
	"strings"
)

// PrimaryColor selects the panel artwork and the shadow tint of a dial.
type PrimaryColor string

// Primary colors offered by the control panel, in display order.
const (
	Red    PrimaryColor = "red"
	Orange PrimaryColor = "orange"
	Yellow PrimaryColor = "yellow"
	Green  PrimaryColor = "green"
	Blue   PrimaryColor = "blue"
	Purple PrimaryColor = "purple"
	Pink   PrimaryColor = "pink"
)

// PrimaryColors lists every supported primary color.
var PrimaryColors = []PrimaryColor{Red, Orange, Yellow, Green, Blue, Purple, Pink}

// AssetRef is an opaque reference to a panel image. Hosts resolve it with
// their own asset loader.
type AssetRef string

// ParsePrimaryColor returns the primary color named by s (case-insensitive).
func ParsePrimaryColor(s string) (PrimaryColor, error) {
	c := PrimaryColor(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &ConfigError{Field: "primaryColor", Value: s, Reason: "unknown primary color"}
	}
	return c, nil
}

// Valid reports whether c is one of the supported primary colors.
func (c PrimaryColor) Valid() bool {
	_, err := c.Asset()
	return err == nil
}

// String implements fmt.Stringer.
func (c PrimaryColor) String() string { return string(c) }

// Asset returns the panel image for c. Values outside the supported set
// fail with a *ConfigError rather than an empty reference.
func (c PrimaryColor) Asset() (AssetRef, error) {
	switch c {
	case Red:
		return "red-gauge-panel.png", nil
	case Orange:
		return "orange-gauge-panel.png", nil
	case Yellow:
		return "yellow-gauge-panel.png", nil
	case Green:
		return "green-gauge-image.png", nil
	case Blue:
		return "blue-gauge-panel.png", nil
	case Purple:
		return "purple-gauge-panel.png", nil
	case Pink:
		return "pink-gauge-panel.png", nil
	default:
		return "", &ConfigError{Field: "primaryColor", Value: string(c), Reason: "no panel asset for color"}
	}
}
