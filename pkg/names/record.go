// Package names defines the canonical baby name record and the
// normalizer that turns loosely typed feed rows into records.
package names

import "github.com/namenest/namenest/pkg/i18n"

// Record is the canonical name record consumed by every presentation
// collaborator. Records are produced only by Normalizer.
type Record struct {
	// ID is unique within a loaded collection and stable across loads
	// of the same content. Favorites reference records by ID.
	ID string `json:"id"`

	// Slug is derived from the English display name. It is not
	// guaranteed to be unique.
	Slug string `json:"slug"`

	Name    i18n.Text `json:"name"`
	Meaning i18n.Text `json:"meaning"`
	Gender  Gender    `json:"gender"`

	Religion Religion `json:"religion"`

	// Origin is a linguistic or cultural origin label.
	Origin string `json:"origin"`

	// Zodiac is empty when unknown.
	Zodiac string `json:"zodiac"`

	// Popularity is within [1,100].
	Popularity int `json:"popularity"`
}
