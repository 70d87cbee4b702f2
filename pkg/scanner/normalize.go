package scanner

import (
	"path"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/asset"
)

// dirClasses maps top-level project directories to the class tried during
// extension inference.
var dirClasses = map[string]asset.Class{
	"img":     asset.ClassImage,
	"audio":   asset.ClassAudio,
	"effects": asset.ClassParticle,
	"js":      asset.ClassScript,
	"data":    asset.ClassData,
}

// normalizer reconciles raw extracted reference strings against the
// inventory.
type normalizer struct {
	inv *asset.Inventory
}

// resolve maps a raw extracted reference to the inventory files it names.
// Unresolvable references are discarded: many extracted strings are plugin
// parameters or dialogue that merely look like names.
func (n *normalizer) resolve(raw string) []asset.File {
	cleaned, ok := cleanRef(raw)
	if !ok {
		return nil
	}

	var matches []asset.File
	if file, found := n.inv.ByPath(cleaned); found {
		matches = []asset.File{file}
	} else if files := n.inferExtension(cleaned); len(files) > 0 {
		matches = files
	} else {
		matches = n.matchBasename(cleaned)
	}
	return n.withCompanions(matches)
}

// cleanRef canonicalizes separators and rejects strings that cannot be a
// project-relative path.
func cleanRef(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimPrefix(s, "./")
	if s == "" || s == "." || s == ".." {
		return "", false
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "../") {
		return "", false
	}
	return path.Clean(s), true
}

// inferExtension tries the extensions known for the reference's directory
// convention until a match exists in the inventory.
func (n *normalizer) inferExtension(cleaned string) []asset.File {
	if path.Ext(cleaned) != "" || !strings.Contains(cleaned, "/") {
		return nil
	}
	prefix, _, _ := strings.Cut(strings.ToLower(cleaned), "/")
	class, known := dirClasses[prefix]
	if !known {
		return nil
	}

	exts := asset.Extensions(class)
	if class == asset.ClassParticle {
		// Effect directories hold both emitters and their textures
		exts = append(exts, asset.Extensions(asset.ClassImage)...)
	}
	for _, ext := range exts {
		if file, found := n.inv.ByPath(cleaned + ext); found {
			return []asset.File{file}
		}
	}
	return nil
}

// matchBasename falls back to basename lookups: data files usually carry
// names relative to a convention directory rather than the project root.
// Every match counts as referenced; ambiguity is resolved conservatively.
func (n *normalizer) matchBasename(cleaned string) []asset.File {
	base := path.Base(cleaned)
	if path.Ext(base) != "" {
		return n.inv.ByBase(base)
	}
	return n.inv.ByStem(base)
}

// withCompanions appends companion files implied by a reference: a
// referenced .pak carries its .pak.info sibling, which nothing names
// explicitly.
func (n *normalizer) withCompanions(files []asset.File) []asset.File {
	result := files
	for _, file := range files {
		if strings.EqualFold(path.Ext(file.RelPath), ".pak") {
			if info, ok := n.inv.ByPath(file.RelPath + ".info"); ok {
				result = append(result, info)
			}
		}
	}
	return result
}
