package asset

// File is a single candidate asset file discovered in the project tree.
// Immutable once enumerated.
type File struct {
	// RelPath is the slash-separated path relative to the project root,
	// with original casing preserved.
	RelPath string
	// Class is the format class derived from the file extension.
	Class Class
}
