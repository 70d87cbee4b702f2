package scanner

import "github.com/kgossett/asset-sweeper/pkg/asset"

// computeUnusedParams contains the inputs of the unused-set calculation.
type computeUnusedParams struct {
	Inventory      *asset.Inventory
	Referenced     map[string]bool
	Whitelist      *Whitelist
	IncludeUnknown bool
}

// computeUnused returns Inventory minus (Referenced union Whitelist),
// restricted to reportable classes. Deterministic given identical inputs;
// output is ordered by canonical path.
func computeUnused(params computeUnusedParams) []string {
	var unused []string
	for _, file := range params.Inventory.Files() {
		if !file.Class.Reportable() {
			continue
		}
		if file.Class == asset.ClassOther && !params.IncludeUnknown {
			continue
		}
		if params.Referenced[asset.Canonical(file.RelPath)] {
			continue
		}
		if params.Whitelist.Match(file.RelPath) {
			continue
		}
		unused = append(unused, file.RelPath)
	}
	return unused
}
