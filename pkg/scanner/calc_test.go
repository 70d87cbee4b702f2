//go:build unit

package scanner

import (
	"testing"

	"github.com/kgossett/asset-sweeper/pkg/asset"
	"github.com/stretchr/testify/assert"
)

func newCalcInventory() *asset.Inventory {
	return asset.NewInventory("/project", []asset.File{
		{RelPath: "data/Actors.json", Class: asset.ClassData},
		{RelPath: "js/main.js", Class: asset.ClassScript},
		{RelPath: "img/pictures/Used.png", Class: asset.ClassImage},
		{RelPath: "img/pictures/Orphan.png", Class: asset.ClassImage},
		{RelPath: "img/pictures/Kept.png", Class: asset.ClassImage},
		{RelPath: "notes.txt", Class: asset.ClassOther},
	})
}

func TestComputeUnused(t *testing.T) {
	whitelist := &Whitelist{}
	whitelist.Add("img/pictures/Kept.png")

	unused := computeUnused(computeUnusedParams{
		Inventory:      newCalcInventory(),
		Referenced:     map[string]bool{"img/pictures/used.png": true},
		Whitelist:      whitelist,
		IncludeUnknown: true,
	})

	assert.Equal(t, []string{"img/pictures/Orphan.png", "notes.txt"}, unused)
}

func TestComputeUnused_StructuredFilesNeverReported(t *testing.T) {
	unused := computeUnused(computeUnusedParams{
		Inventory:      newCalcInventory(),
		Referenced:     map[string]bool{},
		Whitelist:      &Whitelist{},
		IncludeUnknown: true,
	})

	assert.NotContains(t, unused, "data/Actors.json")
	assert.NotContains(t, unused, "js/main.js")
}

func TestComputeUnused_ExcludeUnknown(t *testing.T) {
	unused := computeUnused(computeUnusedParams{
		Inventory:      newCalcInventory(),
		Referenced:     map[string]bool{},
		Whitelist:      &Whitelist{},
		IncludeUnknown: false,
	})

	assert.NotContains(t, unused, "notes.txt")
	assert.Contains(t, unused, "img/pictures/Orphan.png")
}

func TestComputeUnused_WhitelistMonotonic(t *testing.T) {
	params := computeUnusedParams{
		Inventory:      newCalcInventory(),
		Referenced:     map[string]bool{},
		Whitelist:      &Whitelist{},
		IncludeUnknown: true,
	}
	before := computeUnused(params)

	params.Whitelist = &Whitelist{}
	params.Whitelist.Add("img/pictures/Orphan.png")
	after := computeUnused(params)

	assert.Less(t, len(after), len(before))
	assert.Subset(t, before, after)
}
