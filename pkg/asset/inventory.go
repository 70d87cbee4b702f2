package asset

import (
	"fmt"
	iofs "io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/fs"
)

// saveFileExt marks engine save files, which are never part of a deployment.
const saveFileExt = ".rmmzsave"

// Inventory is the set of candidate files found under a project root,
// indexed for path and basename lookups.
type Inventory struct {
	root    string
	files   map[string]File   // canonical path -> File
	byStem  map[string][]File // lowercase basename without extension -> Files
	byBase  map[string][]File // lowercase basename with extension -> Files
	ordered []string          // canonical paths, sorted
}

// CollectParams contains parameters for collecting an inventory.
type CollectParams struct {
	Root     string
	SkipDirs []string
}

// Collect walks the project tree and enumerates every candidate file.
// Symlinks and other non-regular files are skipped, as are dot-files,
// engine save files and the configured skip directories.
func Collect(fsys fs.FS, params CollectParams) (*Inventory, error) {
	isDir, err := fsys.IsDir(params.Root)
	if err != nil || !isDir {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, params.Root)
	}

	skip := make(map[string]bool, len(params.SkipDirs))
	for _, dir := range params.SkipDirs {
		skip[dir] = true
	}

	inv := &Inventory{
		root:   params.Root,
		files:  make(map[string]File),
		byStem: make(map[string][]File),
		byBase: make(map[string][]File),
	}

	err = fsys.WalkDir(params.Root, func(p string, d iofs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		name := d.Name()
		if d.IsDir() {
			if p != params.Root && (skip[name] || strings.HasPrefix(name, ".")) {
				return iofs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.EqualFold(path.Ext(name), saveFileExt) {
			return nil
		}

		rel, relErr := filepath.Rel(params.Root, p)
		if relErr != nil {
			return relErr
		}
		inv.add(File{
			RelPath: filepath.ToSlash(rel),
			Class:   Classify(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project tree: %w", err)
	}

	sort.Strings(inv.ordered)
	return inv, nil
}

// NewInventory builds an inventory from already-enumerated files.
func NewInventory(root string, files []File) *Inventory {
	inv := &Inventory{
		root:   root,
		files:  make(map[string]File),
		byStem: make(map[string][]File),
		byBase: make(map[string][]File),
	}
	for _, file := range files {
		inv.add(file)
	}
	sort.Strings(inv.ordered)
	return inv
}

// add indexes a file under its canonical path, basename and stem.
func (inv *Inventory) add(file File) {
	key := Canonical(file.RelPath)
	if _, exists := inv.files[key]; exists {
		return
	}
	inv.files[key] = file
	inv.ordered = append(inv.ordered, key)

	base := strings.ToLower(path.Base(file.RelPath))
	inv.byBase[base] = append(inv.byBase[base], file)

	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem != "" {
		inv.byStem[stem] = append(inv.byStem[stem], file)
	}
}

// Root returns the project root the inventory was collected from.
func (inv *Inventory) Root() string {
	return inv.root
}

// Len returns the number of files in the inventory.
func (inv *Inventory) Len() int {
	return len(inv.files)
}

// Files returns every file, ordered by canonical path.
func (inv *Inventory) Files() []File {
	result := make([]File, 0, len(inv.ordered))
	for _, key := range inv.ordered {
		result = append(result, inv.files[key])
	}
	return result
}

// ByPath looks up a file by project-relative path, case-insensitively.
func (inv *Inventory) ByPath(relPath string) (File, bool) {
	file, ok := inv.files[Canonical(relPath)]
	return file, ok
}

// ByBase returns every file whose basename matches, case-insensitively.
func (inv *Inventory) ByBase(base string) []File {
	return inv.byBase[strings.ToLower(base)]
}

// ByStem returns every file whose basename without extension matches,
// case-insensitively.
func (inv *Inventory) ByStem(stem string) []File {
	return inv.byStem[strings.ToLower(stem)]
}

// Canonical returns the canonical comparison form of a project-relative
// path: forward slashes, lowercase.
func Canonical(relPath string) string {
	return strings.ToLower(filepath.ToSlash(relPath))
}
