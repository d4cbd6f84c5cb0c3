package names

import "strings"

// Placeholder stands in for tracks recorded without a name.
// Issue locations and summaries need _some_ label; an empty one
// reads like a bug and a nil deref waiting upstream.
const Placeholder = "(unnamed)"

// AliasOrName returns a display label for a track name,
// substituting Placeholder when the recorder left it empty.
func AliasOrName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return Placeholder
	}
	return name
}
