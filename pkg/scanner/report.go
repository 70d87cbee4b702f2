package scanner

// Warning records a scannable file that could not be parsed. The file
// contributes an empty reference set; the scan continues without it.
type Warning struct {
	Path string
	Err  error
}

// Report is the result of a single scan run. Immutable once produced.
type Report struct {
	// Root is the scanned project root.
	Root string
	// Total is the number of files in the inventory.
	Total int
	// Referenced is the number of distinct files marked as referenced.
	Referenced int
	// Unused lists project-relative paths of unreferenced asset files,
	// ordered for display.
	Unused []string
	// Warnings lists files that failed to parse during the scan.
	Warnings []Warning
}
