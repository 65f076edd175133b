package i18n

import (
	"fmt"
	"maps"
	"strings"
)

// ReplacePlaceholders replaces placeholders in the template string with values
// from the provided map. Placeholders use the format %{name}.
// If a placeholder is not found in the map, it remains unchanged.
//
// Example:
//
//	template: "Hello, %{name}! You have %{count} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 || !strings.Contains(template, "%{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprintf("%v", value))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// replacePlaceholdersWithMerge replaces placeholders in a template with values from multiple maps.
// Later maps win on conflicting names.
func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	switch len(placeholders) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, placeholders[0])
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
