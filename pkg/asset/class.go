// Package asset provides asset file classification and project inventory.
package asset

import (
	"path"
	"strings"
)

// Class identifies the format class of a project file.
type Class string

// Format classes. Classification is a pure function of the file extension.
const (
	ClassImage    Class = "image"
	ClassAudio    Class = "audio"
	ClassParticle Class = "particle"
	ClassScript   Class = "script"
	ClassData     Class = "data"
	ClassOther    Class = "other"
)

// classByExt maps lowercase file extensions to their format class.
var classByExt = map[string]Class{
	".png":    ClassImage,
	".jpg":    ClassImage,
	".jpeg":   ClassImage,
	".webp":   ClassImage,
	".bmp":    ClassImage,
	".gif":    ClassImage,
	".ogg":    ClassAudio,
	".m4a":    ClassAudio,
	".wav":    ClassAudio,
	".mp3":    ClassAudio,
	".mid":    ClassAudio,
	".efkefc": ClassParticle,
	".js":     ClassScript,
	".json":   ClassData,
}

// Classify returns the format class for the given path.
func Classify(relPath string) Class {
	ext := strings.ToLower(path.Ext(relPath))
	if class, ok := classByExt[ext]; ok {
		return class
	}
	return ClassOther
}

// Scannable reports whether files of this class are scanned for references.
func (c Class) Scannable() bool {
	switch c {
	case ClassData, ClassScript, ClassParticle:
		return true
	default:
		return false
	}
}

// Reportable reports whether files of this class may appear in the unused
// report. Scripts and data files are implicitly required: they may be
// referenced in ways the scanner cannot verify.
func (c Class) Reportable() bool {
	switch c {
	case ClassData, ClassScript:
		return false
	default:
		return true
	}
}

// Extensions returns the known extensions for a class, in preference order
// for extension inference.
func Extensions(c Class) []string {
	switch c {
	case ClassImage:
		return []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif"}
	case ClassAudio:
		return []string{".ogg", ".m4a", ".wav", ".mp3", ".mid"}
	case ClassParticle:
		return []string{".efkefc"}
	case ClassScript:
		return []string{".js"}
	case ClassData:
		return []string{".json"}
	default:
		return nil
	}
}
