package utils

import (
	"regexp"
	"sort"
)

// vectorPattern finds CVSS v3 vectors embedded in free text. Version 3.0
// vectors are extracted too so that they surface as malformed instead of
// being silently skipped.
var vectorPattern = regexp.MustCompile(`CVSS:3\.[0-9]/[A-Z]{1,3}:[A-Z](?:/[A-Z]{1,3}:[A-Z])*`)

// ExtractVectors walks an arbitrary decoded JSON document (a news item, a
// report item with its attributes, a plain list) and returns every CVSS
// vector it mentions, in document order and without duplicates. Object keys
// are visited in sorted order.
func ExtractVectors(doc interface{}) []string {
	vectors := []string{}
	seen := map[string]bool{}

	var walk func(v interface{})
	walk = func(v interface{}) {
		switch val := v.(type) {
		case string:
			for _, match := range vectorPattern.FindAllString(val, -1) {
				if !seen[match] {
					seen[match] = true
					vectors = append(vectors, match)
				}
			}
		case []interface{}:
			for _, item := range val {
				walk(item)
			}
		case map[string]interface{}:
			keys := make([]string, 0, len(val))
			for k := range val {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(val[k])
			}
		case []string:
			for _, item := range val {
				walk(item)
			}
		}
	}
	walk(doc)

	return vectors
}
