package bynder

import (
	"encoding/json"
	"strings"
	"time"
)

const (
	// originalMediaType marks the media item carrying the canonical filename.
	originalMediaType = "original"

	// propertyPrefix marks metaproperty keys in the raw media API response.
	propertyPrefix = "property_"

	// DefaultThumbnailType is the thumbnail used for video previews.
	DefaultThumbnailType = "webimage"
)

// AssetType classifies an asset by its media kind.
type AssetType string

const (
	AssetTypeImage    AssetType = "image"
	AssetTypeVideo    AssetType = "video"
	AssetTypeDocument AssetType = "document"
)

// MediaItem is one derivative or source file attached to an asset.
type MediaItem struct {
	Type     string `json:"type"`
	FileName string `json:"fileName"`
}

// Asset is an immutable snapshot of a Bynder media entry.
type Asset struct {
	ID           string            `json:"id"`
	IDHash       string            `json:"idHash"`
	Type         AssetType         `json:"type"`
	DateModified time.Time         `json:"dateModified"`
	Thumbnails   map[string]string `json:"thumbnails"`
	MediaItems   []MediaItem       `json:"mediaItems"`

	// Properties holds metaproperty values keyed by property name, in the
	// order the API returned them. Populated from "property_*" keys.
	Properties map[string][]string `json:"-"`
}

// OriginalFileName returns the filename of the "original" media item,
// or the empty string when the asset has none.
func (a *Asset) OriginalFileName() string {
	for _, m := range a.MediaItems {
		if m.Type == originalMediaType {
			return m.FileName
		}
	}
	return ""
}

// UnmarshalJSON decodes the regular fields and collects metaproperties.
// Bynder inlines metaproperties into the media object as "property_<name>"
// keys whose values are either a string or a list of strings.
func (a *Asset) UnmarshalJSON(data []byte) error {
	type alias Asset
	var aux alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	props := make(map[string][]string)
	for key, value := range raw {
		if !strings.HasPrefix(key, propertyPrefix) {
			continue
		}
		name := strings.TrimPrefix(key, propertyPrefix)

		var list []string
		if err := json.Unmarshal(value, &list); err == nil {
			props[name] = list
			continue
		}
		var single string
		if err := json.Unmarshal(value, &single); err == nil {
			props[name] = []string{single}
		}
	}

	*a = Asset(aux)
	a.Properties = props
	return nil
}

// AssetCollection is one page of a media query result.
type AssetCollection struct {
	Media []Asset `json:"media"`
	Total struct {
		Count int `json:"count"`
	} `json:"total"`

	// Page and Limit describe the request that produced this page.
	Page  int `json:"-"`
	Limit int `json:"-"`
}

// IsLastPage reports whether there are no further pages to fetch.
func (c *AssetCollection) IsLastPage() bool {
	if c.Limit <= 0 {
		return true
	}
	return c.Page*c.Limit >= c.Total.Count
}

// NextPage returns the page number following this one.
func (c *AssetCollection) NextPage() int {
	return c.Page + 1
}
