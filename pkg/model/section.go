package model

// ListItem holds the display data for one row of a list.
type ListItem struct {
	Title string `json:"title"`

	// HasNestedContent signals that selecting the row opens a sub-flow
	// instead of starting authentication directly.
	HasNestedContent bool `json:"hasNestedContent"`

	// Icon is nil when no icon was requested or the lookup failed.
	Icon *Icon `json:"icon,omitempty"`
}

// ItemOption configures a ListItem.
type ItemOption func(*ListItem)

// WithNestedContent marks the item as leading to a sub-flow.
func WithNestedContent() ItemOption {
	return func(item *ListItem) {
		item.HasNestedContent = true
	}
}

// WithIcon attaches an icon. A nil icon leaves the item without one.
func WithIcon(icon *Icon) ItemOption {
	return func(item *ListItem) {
		item.Icon = icon
	}
}

// NewItem creates a list item titled with the provider's label.
func NewItem(provider Provider, opts ...ItemOption) ListItem {
	item := ListItem{Title: provider.Label()}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// Section is an ordered group of items with optional header and footer text.
type Section struct {
	Header string     `json:"header,omitempty"`
	Footer string     `json:"footer,omitempty"`
	Items  []ListItem `json:"items"`
}
