// Package replace builds and applies the ordered literal substitutions that
// turn one country tag's template files into another's.
package replace

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Rule is a single literal substitution: every occurrence of From becomes To.
type Rule struct {
	From string
	To   string
}

// ParseRule parses a FROM=TO replacement argument. The string is split at the
// first '='; the right side may be empty (deletion), the left side may not.
func ParseRule(s string) (Rule, error) {
	from, to, ok := strings.Cut(s, "=")
	if !ok {
		return Rule{}, fmt.Errorf("extra replacements must look like FROM=TO (got %q)", s)
	}
	if from == "" {
		return Rule{}, fmt.Errorf("replacement source cannot be empty")
	}
	return Rule{From: from, To: to}, nil
}

// MeshToken returns the mesh naming token for a country tag, e.g. MI_BLR.
func MeshToken(tag string) string {
	return "MI_" + tag
}

// Build returns the substitution rules for cloning templateTag's files as
// newTag, with any user-supplied extras appended after the automatic ones.
//
// The automatic rules run from most to least specific: the prefixed and
// underscore-delimited forms must fire before the bare tag, otherwise the
// bare rule would mutate text the specific rules were meant to match.
func Build(templateTag, newTag string, extras []Rule) []Rule {
	rules := []Rule{
		{From: "zzz_" + templateTag + "_", To: "zzz_" + newTag + "_"},
		{From: templateTag + "_", To: newTag + "_"},
		{From: strings.ToLower(templateTag) + "_", To: strings.ToLower(newTag) + "_"},
		{From: strings.ToLower(templateTag), To: strings.ToLower(newTag)},
		{From: templateTag, To: newTag},
	}
	return append(rules, extras...)
}

// Apply runs every rule over content in order, each rule operating on the
// output of the previous one. When meshPrefix is non-empty, occurrences of
// the template's mesh token (MI_<templateTag>) are swapped for a random
// placeholder before the rules run and swapped back for meshPrefix
// afterwards, so the generic tag rules cannot mangle the token.
//
// Parameters:
//   - content: The full text to transform.
//   - rules: The ordered rule list from Build.
//   - templateTag: The source country tag, used to form the mesh token.
//   - meshPrefix: The final mesh token value, or "" to disable protection.
//
// Returns:
//   - string: The transformed text.
func Apply(content string, rules []Rule, templateTag, meshPrefix string) string {
	var placeholder string
	if meshPrefix != "" {
		placeholder = "__MESH_" + strings.ReplaceAll(uuid.NewString(), "-", "") + "__"
		content = strings.ReplaceAll(content, MeshToken(templateTag), placeholder)
	}

	for _, r := range rules {
		content = strings.ReplaceAll(content, r.From, r.To)
	}

	if placeholder != "" {
		content = strings.ReplaceAll(content, placeholder, meshPrefix)
	}
	return content
}
