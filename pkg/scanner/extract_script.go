package scanner

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	// stringLiteralRe matches single- and double-quoted string literals.
	stringLiteralRe = regexp.MustCompile(`"((?:[^"\\\n]|\\.)+)"|'((?:[^'\\\n]|\\.)+)'`)

	// directiveRe matches the @requiredAssets whitelist directive; the
	// payload runs to the end of the comment line.
	directiveRe = regexp.MustCompile(`@requiredAssets[ \t]+([^\n\r*]+)`)
)

// extractScript scans script text for string literals that could name
// project files and for @requiredAssets whitelist directives.
func extractScript(content []byte) (refs, required []string) {
	text := scrubText(content)

	for _, m := range stringLiteralRe.FindAllStringSubmatch(text, -1) {
		lit := m[1]
		if lit == "" {
			lit = m[2]
		}
		if plausibleRef(lit) {
			refs = append(refs, lit)
		}
	}

	for _, m := range directiveRe.FindAllStringSubmatch(text, -1) {
		required = append(required, splitList(m[1])...)
	}

	return refs, required
}

// extractPluginList parses the JSON array embedded in the plugin list file
// and returns the script path each listed plugin resolves to.
func extractPluginList(content []byte) ([]string, error) {
	start := bytes.IndexByte(content, '[')
	end := bytes.LastIndexByte(content, ']')
	if start < 0 || end <= start {
		return nil, ErrNoPluginArray
	}

	var plugins []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(content[start:end+1], &plugins); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(plugins))
	for _, plugin := range plugins {
		if plugin.Name != "" {
			refs = append(refs, "js/plugins/"+plugin.Name+".js")
		}
	}
	return refs, nil
}

// scrubText strips NUL bytes so scripts saved with odd encodings still scan.
func scrubText(content []byte) string {
	return string(bytes.ReplaceAll(content, []byte{0}, nil))
}

// splitList splits a directive payload on commas and whitespace.
func splitList(payload string) []string {
	var entries []string
	for _, part := range strings.Split(payload, ",") {
		entries = append(entries, strings.Fields(part)...)
	}
	return entries
}
