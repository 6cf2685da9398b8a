// Package picker describes the icon picker form field the host renders.
// Nothing here renders UI; the host's form engine consumes the descriptor
// and stores the chosen icon identifier as a string.
package picker

import (
	"fmt"
	"math"

	coreerrors "iconify-proxy-api/core/errors"
)

// ID is the stable identifier the picker is registered under
const ID = "iconify-picker"

const (
	DefaultCollection = "mdi"
	DefaultIconSize   = 24
)

// Option field names
const (
	FieldDefaultCollection = "defaultCollection"
	FieldCollections       = "collections"
	FieldIconSize          = "iconSize"
)

// Descriptor is the declarative definition of the picker field
type Descriptor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Options     []Option `json:"options"`
	Types       []string `json:"types"`
}

// Option is one row of the picker's configuration form
type Option struct {
	Field   string      `json:"field"`
	Name    string      `json:"name"`
	Type    string      `json:"type"`
	Meta    OptionMeta  `json:"meta"`
	Default interface{} `json:"default,omitempty"`
}

// OptionMeta carries rendering hints for the host
type OptionMeta struct {
	Interface   string `json:"interface"`
	Width       string `json:"width"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Describe returns the picker descriptor
func Describe() Descriptor {
	return Descriptor{
		ID:          ID,
		Name:        "Iconify Picker",
		Icon:        "emoji_emotions",
		Description: "Pick icons from Iconify API",
		Options: []Option{
			{
				Field:   FieldDefaultCollection,
				Name:    "Default Icon Collection",
				Type:    "string",
				Meta:    OptionMeta{Interface: "input", Width: "full", Placeholder: "mdi (Material Design Icons)"},
				Default: DefaultCollection,
			},
			{
				Field: FieldCollections,
				Name:  "Allowed Collections",
				Type:  "json",
				Meta:  OptionMeta{Interface: "tags", Width: "full", Placeholder: "Leave empty for all collections"},
			},
			{
				Field:   FieldIconSize,
				Name:    "Preview Icon Size",
				Type:    "integer",
				Meta:    OptionMeta{Interface: "input", Width: "half"},
				Default: DefaultIconSize,
			},
		},
		Types: []string{"string"},
	}
}

// Options is a resolved picker configuration
type Options struct {
	DefaultCollection string   `json:"defaultCollection"`
	Collections       []string `json:"collections"`
	IconSize          int      `json:"iconSize"`
}

// DefaultOptions returns the configuration used when the host sets nothing
func DefaultOptions() Options {
	return Options{
		DefaultCollection: DefaultCollection,
		Collections:       []string{},
		IconSize:          DefaultIconSize,
	}
}

// Allows reports whether prefix may be picked. An empty list allows every collection.
func (o Options) Allows(prefix string) bool {
	if len(o.Collections) == 0 {
		return true
	}
	for _, c := range o.Collections {
		if c == prefix {
			return true
		}
	}
	return false
}

// ParseOptions applies defaults to a host-supplied option set and type-checks it.
// Unknown keys are ignored; null values fall back to defaults.
func ParseOptions(raw map[string]interface{}) (Options, error) {
	opts := DefaultOptions()

	if v, ok := raw[FieldDefaultCollection]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return Options{}, invalid(FieldDefaultCollection, "must be a string")
		}
		if s != "" {
			opts.DefaultCollection = s
		}
	}

	if v, ok := raw[FieldCollections]; ok && v != nil {
		collections, err := parseCollections(v)
		if err != nil {
			return Options{}, err
		}
		opts.Collections = collections
	}

	if v, ok := raw[FieldIconSize]; ok && v != nil {
		size, err := parseIconSize(v)
		if err != nil {
			return Options{}, err
		}
		opts.IconSize = size
	}

	return opts, nil
}

func parseCollections(v interface{}) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, invalid(FieldCollections, fmt.Sprintf("entry %d must be a non-empty string", i))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, invalid(FieldCollections, "must be an array of collection prefixes")
	}
}

// parseIconSize accepts integers and integral JSON numbers
func parseIconSize(v interface{}) (int, error) {
	var size int
	switch n := v.(type) {
	case int:
		size = n
	case int64:
		size = int(n)
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, invalid(FieldIconSize, "must be an integer")
		}
		size = int(n)
	default:
		return 0, invalid(FieldIconSize, "must be an integer")
	}

	if size <= 0 {
		return 0, invalid(FieldIconSize, "must be positive")
	}
	return size, nil
}

func invalid(field, msg string) error {
	return &coreerrors.ValidationError{Field: field, Message: msg}
}
