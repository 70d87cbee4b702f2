package scanner

import (
	"path/filepath"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/asset"
)

// pluginListPath is the plugin list file, always scanned as an entry point.
const pluginListPath = "js/plugins.js"

// mainScriptPath is the boot script, always scanned as an entry point.
const mainScriptPath = "js/main.js"

// walkResult accumulates the reachable reference set for one scan run.
// It is owned by a single walkReferences call; nothing here is shared.
type walkResult struct {
	referenced map[string]bool // canonical paths
	directives []string        // @requiredAssets payload entries
	warnings   []Warning
}

// entryPoints returns the files always treated as reachable roots: files in
// the project root, everything under data/, and the boot scripts.
func entryPoints(inv *asset.Inventory) []asset.File {
	var entries []asset.File
	for _, file := range inv.Files() {
		key := asset.Canonical(file.RelPath)
		switch {
		case !strings.Contains(key, "/"),
			strings.HasPrefix(key, "data/"),
			key == mainScriptPath,
			key == pluginListPath:
			entries = append(entries, file)
		}
	}
	return entries
}

// walkReferences runs the reachability fixpoint from the entry points.
// Referenced files of scannable classes are queued exactly once, so cycles
// terminate; traversal order does not affect the final set.
func (s *realScanner) walkReferences(inv *asset.Inventory) walkResult {
	result := walkResult{referenced: make(map[string]bool)}
	norm := &normalizer{inv: inv}

	visited := make(map[string]bool)
	var queue []asset.File
	for _, entry := range entryPoints(inv) {
		key := asset.Canonical(entry.RelPath)
		result.referenced[key] = true
		if entry.Class.Scannable() {
			visited[key] = true
			queue = append(queue, entry)
		}
	}

	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]

		refs, required, err := s.extract(inv.Root(), file)
		if err != nil {
			s.logger.Logf("Warning: failed to parse %s: %v", file.RelPath, err)
			result.warnings = append(result.warnings, Warning{Path: file.RelPath, Err: err})
			continue
		}
		result.directives = append(result.directives, required...)

		for _, raw := range refs {
			for _, target := range norm.resolve(raw) {
				key := asset.Canonical(target.RelPath)
				result.referenced[key] = true
				if target.Class.Scannable() && !visited[key] {
					visited[key] = true
					queue = append(queue, target)
				}
			}
		}
	}
	return result
}

// extract reads a scannable file and dispatches to its class extractor.
// A file that fails to parse contributes an empty reference set.
func (s *realScanner) extract(root string, file asset.File) (refs, required []string, err error) {
	content, err := s.fs.ReadFile(filepath.Join(root, filepath.FromSlash(file.RelPath)))
	if err != nil {
		return nil, nil, err
	}

	switch file.Class {
	case asset.ClassData:
		refs, err = extractData(content)
		return refs, nil, err
	case asset.ClassScript:
		refs, required = extractScript(content)
		if asset.Canonical(file.RelPath) == pluginListPath {
			pluginRefs, perr := extractPluginList(content)
			if perr != nil {
				return nil, nil, perr
			}
			refs = append(refs, pluginRefs...)
		}
		return refs, required, nil
	case asset.ClassParticle:
		return extractParticle(content), nil, nil
	default:
		return nil, nil, nil
	}
}
