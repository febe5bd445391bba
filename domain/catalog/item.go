// Package catalog models the remote item catalog's records and the rules
// for deriving their icon resource paths.
package catalog

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// MinSearchTermLength is the shortest term worth sending to the catalog.
// Shorter terms clear the result list without touching the network.
const MinSearchTermLength = 3

// Searchable reports whether a term is long enough to query the catalog.
func Searchable(term string) bool {
	return utf8.RuneCountInString(term) >= MinSearchTermLength
}

// ItemType is the closed set of item kinds the catalog reports.
// Anything outside the two known wire tags collapses to ItemTypeUnknown.
type ItemType string

const (
	ItemTypeStack   ItemType = "stack_item"
	ItemTypeFluid   ItemType = "fluid"
	ItemTypeUnknown ItemType = "unknown"
)

// Wire tags used by the catalog's ty field.
const (
	wireTypeStack = "Item"
	wireTypeFluid = "Fluid"
)

// ParseItemType maps a wire ty tag onto the closed variant.
func ParseItemType(ty string) ItemType {
	switch ty {
	case wireTypeStack:
		return ItemTypeStack
	case wireTypeFluid:
		return ItemTypeFluid
	default:
		return ItemTypeUnknown
	}
}

// Item is a single search result, sourced verbatim from the catalog
// response. Immutable.
type Item struct {
	ID          int      `json:"id"`
	DisplayName string   `json:"displayName"`
	ExternalID  string   `json:"externalId"`
	Type        ItemType `json:"type"`
}

// ItemSpec is the richer decode shape carrying a quantity. It is decodable
// for recipe-oriented callers but is not used for display.
type ItemSpec struct {
	Item
	Quantity int `json:"quantity"`
}

// wireItem mirrors the catalog's JSON record layout.
type wireItem struct {
	ItemID      int    `json:"item_id"`
	HumanName   string `json:"human_name"`
	MinecraftID string `json:"minecraft_id"`
	Ty          string `json:"ty"`
	Quantity    int    `json:"quantity"`
}

func (w wireItem) item() Item {
	return Item{
		ID:          w.ItemID,
		DisplayName: w.HumanName,
		ExternalID:  w.MinecraftID,
		Type:        ParseItemType(w.Ty),
	}
}

// UnmarshalJSON decodes the catalog's wire record into an Item,
// discarding the quantity.
func (i *Item) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*i = w.item()
	return nil
}

// UnmarshalJSON decodes the catalog's wire record into an ItemSpec.
func (s *ItemSpec) UnmarshalJSON(data []byte) error {
	var w wireItem
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Item = w.item()
	s.Quantity = w.Quantity
	return nil
}

// Icon resource paths.
const (
	itemImageDir   = "/images/items/"
	fluidImageDir  = "/images/fluids/"
	unknownIconURL = "/static/ohno.png"
	imageExtension = ".png"
)

// IconURL derives the icon path for an external id of the given type.
// Colons in the id are replaced by underscores; unknown types always map
// to the fallback image regardless of id.
func IconURL(externalID string, t ItemType) string {
	switch t {
	case ItemTypeStack:
		return itemImageDir + sanitizeExternalID(externalID) + imageExtension
	case ItemTypeFluid:
		return fluidImageDir + sanitizeExternalID(externalID) + imageExtension
	default:
		return unknownIconURL
	}
}

// IconURL derives the icon path for this item.
func (i Item) IconURL() string {
	return IconURL(i.ExternalID, i.Type)
}

func sanitizeExternalID(id string) string {
	return strings.ReplaceAll(id, ":", "_")
}
