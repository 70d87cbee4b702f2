package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/asset"
	"gopkg.in/yaml.v3"
)

// Whitelist is the set of paths and patterns force-included in the
// referenced set. Entries come from the project override file and from
// @requiredAssets directives in scripts.
type Whitelist struct {
	patterns []string
}

// Add registers additional whitelist entries.
func (w *Whitelist) Add(entries ...string) {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			w.patterns = append(w.patterns, asset.Canonical(entry))
		}
	}
}

// Len returns the number of registered entries.
func (w *Whitelist) Len() int {
	return len(w.patterns)
}

// Match reports whether the given project-relative path is whitelisted.
// A pattern matches the full path, its basename, or its stem, and may use
// glob syntax.
func (w *Whitelist) Match(relPath string) bool {
	p := asset.Canonical(relPath)
	base := path.Base(p)
	stem := strings.TrimSuffix(base, path.Ext(base))

	for _, pattern := range w.patterns {
		if pattern == p {
			return true
		}
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if pattern == base || pattern == stem {
				return true
			}
			if ok, err := path.Match(pattern, base); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// loadWhitelist reads the project override file, if present. The override
// file itself never appears in the unused report.
func (s *realScanner) loadWhitelist(root string) (*Whitelist, error) {
	whitelist := &Whitelist{}
	name := s.config.WhitelistFile
	if name == "" {
		return whitelist, nil
	}

	fullPath := filepath.Join(root, filepath.FromSlash(name))
	exists, err := s.fs.Exists(fullPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return whitelist, nil
	}

	data, err := s.fs.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	whitelist.Add(entries...)
	whitelist.Add(name)
	s.logger.Logf("Loaded %d whitelist entries from %s", len(entries), name)
	return whitelist, nil
}
