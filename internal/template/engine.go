package template

import "regexp"

// placeholderPattern matches {name} or {name.next}/{name.last}.
var placeholderPattern = regexp.MustCompile(`\{[a-z_][a-z0-9_]*(?:\.(?:next|last))?\}`)

// Render performs a single substitution pass over format, replacing every
// {placeholder} with its resolved value from vars. Unknown placeholders —
// names not present in vars at all — are replaced with the empty string
// rather than left verbatim or treated as an error.
func Render(format string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(format, func(token string) string {
		name := token[1 : len(token)-1]
		return vars[name]
	})
}
