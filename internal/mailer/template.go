package mailer

import "regexp"

// tokenPattern matches {{token}} placeholders in email templates.
var tokenPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Render substitutes {{token}} placeholders from vars in a single global
// pass. Unknown tokens pass through unchanged, and substituted values are
// never rescanned, so a value containing {{...}} stays literal.
func Render(template string, vars map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
