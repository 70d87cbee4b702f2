package scanner

import (
	"regexp"
	"strings"

	"github.com/kgossett/asset-sweeper/pkg/asset"
)

var (
	// asciiRunRe matches printable ASCII runs of at least four characters.
	asciiRunRe = regexp.MustCompile(`[ -~]{4,}`)

	// utf16RunRe matches UTF-16LE encoded printable ASCII runs.
	utf16RunRe = regexp.MustCompile(`(?:[ -~]\x00){4,}`)
)

// extractParticle scans a particle-effect file for embedded sub-resource
// names. The format is opaque binary; resource names appear as printable
// ASCII or UTF-16LE runs carrying a known asset extension.
func extractParticle(content []byte) []string {
	seen := make(map[string]bool)
	var refs []string
	add := func(s string) {
		if asset.Classify(s) == asset.ClassOther || seen[s] {
			return
		}
		seen[s] = true
		refs = append(refs, s)
	}

	for _, run := range asciiRunRe.FindAll(content, -1) {
		add(string(run))
	}
	for _, run := range utf16RunRe.FindAll(content, -1) {
		add(decodeUTF16LE(run))
	}
	return refs
}

// decodeUTF16LE decodes a run matched by utf16RunRe; every code unit in the
// run is printable ASCII, so the high bytes are all zero.
func decodeUTF16LE(run []byte) string {
	var sb strings.Builder
	for i := 0; i+1 < len(run); i += 2 {
		sb.WriteByte(run[i])
	}
	return sb.String()
}
