package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// IconKind distinguishes bundled image assets from symbolic glyphs.
type IconKind string

// Supported icon kinds
const (
	IconKindAsset  IconKind = "asset"
	IconKindSymbol IconKind = "symbol"
)

// IsValid returns true if this icon kind is supported.
func (kind IconKind) IsValid() bool {
	switch kind {
	case IconKindAsset, IconKindSymbol:
		return true
	}
	return false
}

// Color is an RGB color in "#rrggbb" form.
type Color string

// ColorSystemOrange is the default tint for symbolic icons.
const ColorSystemOrange Color = "#ff9500"

var colorRegex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

// ErrInvalidColor is returned when a string is not a valid "#rrggbb" color.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a hex color, with or without the leading '#'.
func ParseColor(s string) (Color, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if c != "" && !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	if !colorRegex.MatchString(c) {
		return "", errors.Wrapf(ErrInvalidColor, "%q", s)
	}
	return Color(c), nil
}

// iconNamespace scopes icon handle IDs so the same inputs always produce
// the same handle.
var iconNamespace = uuid.NewV5(uuid.NamespaceURL, "https://ftauth.io/authcatalog/icons")

// Icon is an opaque reference to an image resolved by an icon resolver.
// The catalog only passes handles around and never holds image data.
type Icon struct {
	ID   uuid.UUID `json:"id"`
	Kind IconKind  `json:"kind"`
	Name string    `json:"name"`
	Tint Color     `json:"tint,omitempty"`
	URL  string    `json:"url,omitempty"`
}

// NewAssetIcon creates a handle for a bundled image asset.
func NewAssetIcon(name, url string) *Icon {
	return &Icon{
		ID:   iconID(IconKindAsset, name, ""),
		Kind: IconKindAsset,
		Name: name,
		URL:  url,
	}
}

// NewSymbolIcon creates a handle for a symbolic glyph drawn with tint.
func NewSymbolIcon(name string, tint Color, url string) *Icon {
	return &Icon{
		ID:   iconID(IconKindSymbol, name, tint),
		Kind: IconKindSymbol,
		Name: name,
		Tint: tint,
		URL:  url,
	}
}

func iconID(kind IconKind, name string, tint Color) uuid.UUID {
	return uuid.NewV5(iconNamespace, fmt.Sprintf("%s/%s/%s", kind, name, tint))
}
