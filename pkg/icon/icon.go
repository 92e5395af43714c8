// Package icon defines how the catalog resolves icon handles.
package icon

import "github.com/ftauth/authcatalog/pkg/model"

// Resolver looks up icon handles. Both methods return nil when the
// image is unavailable; a missing icon is not an error.
type Resolver interface {
	// ByName resolves a bundled image asset.
	ByName(name string) *model.Icon

	// BySymbol resolves a symbolic glyph drawn with the given tint.
	BySymbol(name string, tint model.Color) *model.Icon
}

// Default asset and symbol names used by the catalog.
const (
	AssetFirebase = "firebaseIcon"

	SymbolLockSlash    = "lock.slash.fill"
	SymbolPhone        = "phone.fill"
	SymbolQuestionMark = "questionmark.circle.fill"
	SymbolLockShield   = "lock.shield.fill"
)

// DefaultAssets lists the bundled image assets.
var DefaultAssets = []string{AssetFirebase}

// DefaultSymbols lists the symbolic glyphs.
var DefaultSymbols = []string{
	SymbolLockSlash,
	SymbolPhone,
	SymbolQuestionMark,
	SymbolLockShield,
}

// Static resolves icons against a fixed set of known names.
type Static struct {
	assets  map[string]bool
	symbols map[string]bool
}

// NewStatic creates a resolver that knows the given assets and symbols.
func NewStatic(assets, symbols []string) *Static {
	s := &Static{
		assets:  make(map[string]bool, len(assets)),
		symbols: make(map[string]bool, len(symbols)),
	}
	for _, name := range assets {
		s.assets[name] = true
	}
	for _, name := range symbols {
		s.symbols[name] = true
	}
	return s
}

// NewDefaultStatic creates a resolver that knows the default icon set.
func NewDefaultStatic() *Static {
	return NewStatic(DefaultAssets, DefaultSymbols)
}

// ByName implements Resolver.
func (s *Static) ByName(name string) *model.Icon {
	if !s.assets[name] {
		return nil
	}
	return model.NewAssetIcon(name, "")
}

// BySymbol implements Resolver.
func (s *Static) BySymbol(name string, tint model.Color) *model.Icon {
	if !s.symbols[name] {
		return nil
	}
	return model.NewSymbolIcon(name, tint, "")
}

// Nop never resolves an icon.
type Nop struct{}

// ByName implements Resolver.
func (Nop) ByName(string) *model.Icon { return nil }

// BySymbol implements Resolver.
func (Nop) BySymbol(string, model.Color) *model.Icon { return nil }
