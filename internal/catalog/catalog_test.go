package catalog

import (
	"errors"
	"testing"

	"github.com/ftauth/authcatalog/pkg/icon"
	"github.com/ftauth/authcatalog/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(items []model.ListItem) []string {
	var t []string
	for _, item := range items {
		t = append(t, item.Title)
	}
	return t
}

func labels(providers ...model.Provider) []string {
	var l []string
	for _, p := range providers {
		l = append(l, p.Label())
	}
	return l
}

func TestProviderSection(t *testing.T) {
	c := New(icon.NewDefaultStatic())
	section := c.ProviderSection()

	require.Len(t, section.Items, 7)
	assert.Equal(t, labels(
		model.ProviderGoogle,
		model.ProviderApple,
		model.ProviderTwitter,
		model.ProviderMicrosoft,
		model.ProviderGitHub,
		model.ProviderYahoo,
		model.ProviderFacebook,
	), titles(section.Items))

	for _, item := range section.Items {
		assert.False(t, item.HasNestedContent)
		assert.Nil(t, item.Icon)
	}
	assert.Equal(t, "Identity Providers", section.Header)
	assert.Equal(t, providerFooter, section.Footer)
}

func TestEmailPasswordSection(t *testing.T) {
	c := New(icon.NewDefaultStatic())
	section := c.EmailPasswordSection()

	require.Len(t, section.Items, 1)
	item := section.Items[0]
	assert.Equal(t, "Email & Password Login", item.Title)
	assert.True(t, item.HasNestedContent)
	require.NotNil(t, item.Icon)
	assert.Equal(t, icon.AssetFirebase, item.Icon.Name)
	assert.Equal(t, model.IconKindAsset, item.Icon.Kind)

	assert.Empty(t, section.Header)
	assert.Equal(t, emailPasswordFooter, section.Footer)
}

func TestOtherSection(t *testing.T) {
	tint := model.Color("#123456")
	c := New(icon.NewDefaultStatic(), WithTint(tint))
	section := c.OtherSection()

	require.Len(t, section.Items, 4)
	assert.Equal(t, labels(
		model.ProviderPasswordless,
		model.ProviderPhoneNumber,
		model.ProviderAnonymous,
		model.ProviderCustom,
	), titles(section.Items))

	seen := make(map[string]bool)
	for _, item := range section.Items {
		assert.False(t, item.HasNestedContent)
		require.NotNil(t, item.Icon)
		assert.Equal(t, model.IconKindSymbol, item.Icon.Kind)
		assert.Equal(t, tint, item.Icon.Tint)
		assert.False(t, seen[item.Icon.Name])
		seen[item.Icon.Name] = true
	}

	assert.Empty(t, section.Header)
	assert.Equal(t, "Other authentication methods.", section.Footer)
}

func TestMissingIcons(t *testing.T) {
	tt := []struct {
		name     string
		resolver icon.Resolver
	}{
		{name: "Nop", resolver: icon.Nop{}},
		{name: "Nil", resolver: nil},
		{name: "Empty", resolver: icon.NewStatic(nil, nil)},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			c := New(test.resolver)

			email := c.EmailPasswordSection()
			require.Len(t, email.Items, 1)
			assert.Nil(t, email.Items[0].Icon)
			assert.True(t, email.Items[0].HasNestedContent)

			other := c.OtherSection()
			require.Len(t, other.Items, 4)
			for _, item := range other.Items {
				assert.Nil(t, item.Icon)
			}
		})
	}
}

func TestWithEmailIcon(t *testing.T) {
	c := New(icon.NewStatic([]string{"customIcon"}, nil), WithEmailIcon("customIcon"))
	item := c.EmailPasswordSection().Items[0]
	require.NotNil(t, item.Icon)
	assert.Equal(t, "customIcon", item.Icon.Name)
}

func TestAllSections(t *testing.T) {
	c := New(icon.NewDefaultStatic())
	sections := c.AllSections()

	require.Len(t, sections, 3)
	var counts []int
	for _, section := range sections {
		counts = append(counts, len(section.Items))
	}
	assert.Equal(t, []int{7, 1, 4}, counts)
}

func TestAuthLinkSections(t *testing.T) {
	c := New(icon.NewDefaultStatic())
	sections := c.AuthLinkSections()

	require.Len(t, sections, 1)
	section := sections[0]
	require.Len(t, section.Items, 12)
	assert.Equal(t, "Manage linking between providers", section.Header)
	assert.Equal(t, linkFooter, section.Footer)

	var want []model.ListItem
	for _, s := range c.AllSections() {
		want = append(want, s.Items...)
	}
	assert.Equal(t, want, section.Items)
	assert.Equal(t, labels(model.Providers()...), titles(section.Items))
}

func TestSectionsIdempotent(t *testing.T) {
	c := New(icon.NewDefaultStatic())

	assert.Equal(t, c.ProviderSection(), c.ProviderSection())
	assert.Equal(t, c.EmailPasswordSection(), c.EmailPasswordSection())
	assert.Equal(t, c.OtherSection(), c.OtherSection())
	assert.Equal(t, c.AllSections(), c.AllSections())
	assert.Equal(t, c.AuthLinkSections(), c.AuthLinkSections())

	// Mutating a returned section does not leak into later calls.
	first := c.ProviderSection()
	first.Items[0].Title = "Changed"
	assert.Equal(t, "Google", c.ProviderSection().Items[0].Title)
}

func TestSections(t *testing.T) {
	c := New(icon.NewDefaultStatic())

	tt := []struct {
		screen string
		want   []model.Section
	}{
		{ScreenPicker, c.AllSections()},
		{ScreenLink, c.AuthLinkSections()},
		{ScreenProviders, []model.Section{c.ProviderSection()}},
		{ScreenEmail, []model.Section{c.EmailPasswordSection()}},
		{ScreenOther, []model.Section{c.OtherSection()}},
	}

	for _, test := range tt {
		t.Run(test.screen, func(t *testing.T) {
			sections, err := c.Sections(test.screen)
			require.NoError(t, err)
			assert.Equal(t, test.want, sections)
		})
	}

	_, err := c.Sections("settings")
	assert.True(t, errors.Is(err, ErrUnknownScreen))
}

func TestProviderID(t *testing.T) {
	c := New(nil)
	assert.Equal(t, "google.com", c.ProviderID(model.ProviderGoogle))
	assert.Equal(t, "phone", c.ProviderID(model.ProviderPhoneNumber))
	assert.Equal(t, "custom", c.ProviderID(model.ProviderCustom))
}
