package model_test

import (
	"errors"
	"testing"

	"github.com/ftauth/authcatalog/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tt := []struct {
		input string
		want  model.Color
		valid bool
	}{
		{input: "#ff9500", want: model.ColorSystemOrange, valid: true},
		{input: "FF9500", want: model.ColorSystemOrange, valid: true},
		{input: " #00AAff ", want: "#00aaff", valid: true},
		{input: "#fff", valid: false},
		{input: "orange", valid: false},
		{input: "", valid: false},
	}

	for _, test := range tt {
		color, err := model.ParseColor(test.input)
		if test.valid {
			assert.NoError(t, err)
			assert.Equal(t, test.want, color)
		} else {
			assert.Truef(t, errors.Is(err, model.ErrInvalidColor), "Want error, got color: %v", color)
		}
	}
}

func TestIconIDs(t *testing.T) {
	a := model.NewSymbolIcon("phone.fill", model.ColorSystemOrange, "")
	b := model.NewSymbolIcon("phone.fill", model.ColorSystemOrange, "https://cdn.example.com/phone.svg")
	assert.Equal(t, a.ID, b.ID)

	c := model.NewSymbolIcon("phone.fill", "#000000", "")
	assert.NotEqual(t, a.ID, c.ID)

	d := model.NewAssetIcon("phone.fill", "")
	assert.NotEqual(t, a.ID, d.ID)
	assert.Equal(t, model.IconKindAsset, d.Kind)
	assert.Empty(t, d.Tint)
}

func TestNewItem(t *testing.T) {
	item := model.NewItem(model.ProviderGoogle)
	assert.Equal(t, model.ListItem{Title: "Google"}, item)

	icon := model.NewAssetIcon("firebaseIcon", "")
	item = model.NewItem(model.ProviderEmailPassword, model.WithNestedContent(), model.WithIcon(icon))
	assert.Equal(t, "Email & Password Login", item.Title)
	assert.True(t, item.HasNestedContent)
	assert.Equal(t, icon, item.Icon)

	item = model.NewItem(model.ProviderCustom, model.WithIcon(nil))
	assert.Nil(t, item.Icon)
}
