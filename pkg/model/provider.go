package model

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Provider represents a supported method of authentication, i.e. Google or
// Email & Password. Its underlying value is the label shown in the UI.
type Provider string

// Supported identity providers and other methods of authentication
const (
	ProviderGoogle        Provider = "Google"
	ProviderApple         Provider = "Apple"
	ProviderTwitter       Provider = "Twitter"
	ProviderMicrosoft     Provider = "Microsoft"
	ProviderGitHub        Provider = "GitHub"
	ProviderYahoo         Provider = "Yahoo"
	ProviderFacebook      Provider = "Facebook"
	ProviderEmailPassword Provider = "Email & Password Login"
	ProviderPasswordless  Provider = "Email Link/Passwordless"
	ProviderPhoneNumber   Provider = "Phone Number"
	ProviderAnonymous     Provider = "Anonymous Authentication"
	ProviderCustom        Provider = "Custom Auth System"
)

// ErrUnknownProvider is returned when a provider ID does not match any
// supported provider.
var ErrUnknownProvider = errors.New("unknown provider")

var allProviders = []Provider{
	ProviderGoogle,
	ProviderApple,
	ProviderTwitter,
	ProviderMicrosoft,
	ProviderGitHub,
	ProviderYahoo,
	ProviderFacebook,
	ProviderEmailPassword,
	ProviderPasswordless,
	ProviderPhoneNumber,
	ProviderAnonymous,
	ProviderCustom,
}

// Providers returns every supported provider in declaration order.
func Providers() []Provider {
	providers := make([]Provider, len(allProviders))
	copy(providers, allProviders)
	return providers
}

// ID returns the identifier the identity platform SDK uses for this
// provider, e.g. "google.com" or "password".
func (provider Provider) ID() string {
	switch provider {
	case ProviderEmailPassword:
		return "password"
	case ProviderPhoneNumber:
		return "phone"
	case ProviderPasswordless:
		return "emailLink"
	case ProviderAnonymous:
		return "anonymous"
	case ProviderCustom:
		return "custom"
	default:
		return strings.ToLower(string(provider)) + ".com"
	}
}

// Label returns the human-readable title.
func (provider Provider) Label() string {
	return string(provider)
}

// IsValid returns true if this is a supported provider.
func (provider Provider) IsValid() bool {
	for _, p := range allProviders {
		if p == provider {
			return true
		}
	}
	return false
}

// ParseProviderID looks up the provider whose ID matches id.
func ParseProviderID(id string) (Provider, error) {
	for _, p := range allProviders {
		if p.ID() == id {
			return p, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownProvider, "id %q", id)
}

type providerJSON struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MarshalJSON encodes the provider with both its ID and label.
func (provider Provider) MarshalJSON() ([]byte, error) {
	return json.Marshal(providerJSON{
		ID:    provider.ID(),
		Label: provider.Label(),
	})
}

// UnmarshalJSON accepts either the object form written by MarshalJSON
// or a bare provider ID string.
func (provider *Provider) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj providerJSON
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		id = obj.ID
	}
	p, err := ParseProviderID(id)
	if err != nil {
		return err
	}
	*provider = p
	return nil
}
