package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchable(t *testing.T) {
	assert.False(t, Searchable(""))
	assert.False(t, Searchable("a"))
	assert.False(t, Searchable("ab"))
	assert.True(t, Searchable("abc"))
	assert.True(t, Searchable("torch"))
	// Rune count, not byte count.
	assert.True(t, Searchable("石英块"))
}

func TestParseItemType(t *testing.T) {
	assert.Equal(t, ItemTypeStack, ParseItemType("Item"))
	assert.Equal(t, ItemTypeFluid, ParseItemType("Fluid"))
	assert.Equal(t, ItemTypeUnknown, ParseItemType("Gas"))
	assert.Equal(t, ItemTypeUnknown, ParseItemType(""))
}

func TestItemDecode(t *testing.T) {
	payload := `[{"item_id":1,"human_name":"Torch","minecraft_id":"minecraft:torch","ty":"Item","quantity":1}]`

	var items []Item
	require.NoError(t, json.Unmarshal([]byte(payload), &items))
	require.Len(t, items, 1)

	assert.Equal(t, Item{
		ID:          1,
		DisplayName: "Torch",
		ExternalID:  "minecraft:torch",
		Type:        ItemTypeStack,
	}, items[0])
}

func TestItemSpecDecodeKeepsQuantity(t *testing.T) {
	payload := `{"item_id":5,"human_name":"Lava","minecraft_id":"minecraft:lava","ty":"Fluid","quantity":1000}`

	var spec ItemSpec
	require.NoError(t, json.Unmarshal([]byte(payload), &spec))

	assert.Equal(t, "Lava", spec.DisplayName)
	assert.Equal(t, ItemTypeFluid, spec.Type)
	assert.Equal(t, 1000, spec.Quantity)
}

func TestIconURL(t *testing.T) {
	assert.Equal(t, "/images/fluids/minecraft_lava.png",
		IconURL("minecraft:lava", ItemTypeFluid))
	assert.Equal(t, "/images/items/minecraft_torch.png",
		IconURL("minecraft:torch", ItemTypeStack))

	// Unknown types fall back to the placeholder no matter the id.
	assert.Equal(t, "/static/ohno.png", IconURL("minecraft:lava", ItemTypeUnknown))
	assert.Equal(t, "/static/ohno.png", IconURL("", ItemTypeUnknown))
	assert.Equal(t, "/static/ohno.png", IconURL("anything:at_all", ItemType("Gas")))
}

func TestItemIconURL(t *testing.T) {
	item := Item{ExternalID: "gregtech:gt.metaitem.01", Type: ItemTypeStack}
	assert.Equal(t, "/images/items/gregtech_gt.metaitem.01.png", item.IconURL())
}
