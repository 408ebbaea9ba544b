package repository

import "encoding/json"

// encodeStringList serializes an ordered list of strings for storage in
// a JSON text column. A nil list encodes as an empty array.
func encodeStringList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

// decodeStringList reverses encodeStringList. A corrupt, empty or
// absent stored value decodes to an empty slice rather than failing the
// read.
func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
