// Package catalog groups the supported authentication providers into the
// sections shown by the provider picker and link management screens.
package catalog

import (
	"github.com/ftauth/authcatalog/pkg/icon"
	"github.com/ftauth/authcatalog/pkg/model"
	"github.com/pkg/errors"
)

// ErrUnknownScreen is returned when no sections are defined for a screen name.
var ErrUnknownScreen = errors.New("unknown screen")

// Screen names accepted by Sections.
const (
	ScreenPicker    = "picker"
	ScreenLink      = "link"
	ScreenProviders = "providers"
	ScreenEmail     = "email"
	ScreenOther     = "other"
)

// Section text
const (
	providerHeader = "Identity Providers"
	providerFooter = "Choose a login flow from one of the identity providers above."

	emailPasswordFooter = "A example login flow with password authentication."

	otherFooter = "Other authentication methods."

	linkHeader = "Manage linking between providers"
	linkFooter = "Select an unchecked row to link the currently signed in user to that auth provider. " +
		"To unlink the user from a linked provider, select its corresponding row marked with a checkmark."
)

// identityProviders are the federated providers, in display order.
var identityProviders = []model.Provider{
	model.ProviderGoogle,
	model.ProviderApple,
	model.ProviderTwitter,
	model.ProviderMicrosoft,
	model.ProviderGitHub,
	model.ProviderYahoo,
	model.ProviderFacebook,
}

// otherProviders pairs each remaining method with its symbol.
var otherProviders = []struct {
	provider model.Provider
	symbol   string
}{
	{model.ProviderPasswordless, icon.SymbolLockSlash},
	{model.ProviderPhoneNumber, icon.SymbolPhone},
	{model.ProviderAnonymous, icon.SymbolQuestionMark},
	{model.ProviderCustom, icon.SymbolLockShield},
}

// Catalog builds display sections for the supported providers.
// Sections are rebuilt on every call; a Catalog holds no mutable state
// and is safe for concurrent use.
type Catalog struct {
	resolver  icon.Resolver
	tint      model.Color
	emailIcon string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithTint sets the tint used for symbolic icons.
func WithTint(tint model.Color) Option {
	return func(c *Catalog) {
		c.tint = tint
	}
}

// WithEmailIcon sets the asset shown next to the email/password flow.
func WithEmailIcon(name string) Option {
	return func(c *Catalog) {
		c.emailIcon = name
	}
}

// New creates a catalog that resolves icons with resolver.
func New(resolver icon.Resolver, opts ...Option) *Catalog {
	if resolver == nil {
		resolver = icon.Nop{}
	}
	c := &Catalog{
		resolver:  resolver,
		tint:      model.ColorSystemOrange,
		emailIcon: icon.AssetFirebase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProviderID returns the identity platform's ID for p.
func (c *Catalog) ProviderID(p model.Provider) string {
	return p.ID()
}

// ProviderSection lists the federated identity providers.
func (c *Catalog) ProviderSection() model.Section {
	items := make([]model.ListItem, 0, len(identityProviders))
	for _, p := range identityProviders {
		items = append(items, model.NewItem(p))
	}
	return model.Section{
		Header: providerHeader,
		Footer: providerFooter,
		Items:  items,
	}
}

// EmailPasswordSection holds the single entry leading to the
// email/password flow.
func (c *Catalog) EmailPasswordSection() model.Section {
	item := model.NewItem(
		model.ProviderEmailPassword,
		model.WithNestedContent(),
		model.WithIcon(c.resolver.ByName(c.emailIcon)),
	)
	return model.Section{
		Footer: emailPasswordFooter,
		Items:  []model.ListItem{item},
	}
}

// OtherSection lists the remaining methods of authentication.
func (c *Catalog) OtherSection() model.Section {
	items := make([]model.ListItem, 0, len(otherProviders))
	for _, other := range otherProviders {
		symbol := c.resolver.BySymbol(other.symbol, c.tint)
		items = append(items, model.NewItem(other.provider, model.WithIcon(symbol)))
	}
	return model.Section{
		Footer: otherFooter,
		Items:  items,
	}
}

// AllSections returns the content of the provider picker.
func (c *Catalog) AllSections() []model.Section {
	return []model.Section{
		c.ProviderSection(),
		c.EmailPasswordSection(),
		c.OtherSection(),
	}
}

// AuthLinkSections returns every item of AllSections in a single section.
// Callers mark each row with the signed in user's link state.
func (c *Catalog) AuthLinkSections() []model.Section {
	var items []model.ListItem
	for _, section := range c.AllSections() {
		items = append(items, section.Items...)
	}
	return []model.Section{{
		Header: linkHeader,
		Footer: linkFooter,
		Items:  items,
	}}
}

// Sections returns the sections for a named screen.
func (c *Catalog) Sections(screen string) ([]model.Section, error) {
	switch screen {
	case ScreenPicker:
		return c.AllSections(), nil
	case ScreenLink:
		return c.AuthLinkSections(), nil
	case ScreenProviders:
		return []model.Section{c.ProviderSection()}, nil
	case ScreenEmail:
		return []model.Section{c.EmailPasswordSection()}, nil
	case ScreenOther:
		return []model.Section{c.OtherSection()}, nil
	}
	return nil, errors.Wrapf(ErrUnknownScreen, "%q", screen)
}
