package scanner

import (
	"bytes"
	"encoding/json"
	"strings"
)

// extractData decodes a structured-data file and collects every string
// scalar that could name another project file. Duplicates are allowed;
// de-duplication happens downstream.
func extractData(content []byte) ([]string, error) {
	var root interface{}
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	var refs []string
	collectStrings(root, &refs)
	return refs, nil
}

// collectStrings recursively walks decoded JSON collecting candidate strings.
func collectStrings(node interface{}, refs *[]string) {
	switch v := node.(type) {
	case string:
		if plausibleRef(v) {
			*refs = append(*refs, v)
		}
	case []interface{}:
		for _, item := range v {
			collectStrings(item, refs)
		}
	case map[string]interface{}:
		for _, item := range v {
			collectStrings(item, refs)
		}
	}
}

// plausibleRef filters extracted strings down to those that could name a
// project file. Multi-line strings are dialogue or note text, not names.
func plausibleRef(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 128 {
		return false
	}
	if strings.ContainsAny(s, "\n\r\t") {
		return false
	}
	if strings.Contains(s, "://") {
		return false
	}
	return true
}
