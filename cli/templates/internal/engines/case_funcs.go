package engines

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// transforms contains the fixed set of string helpers allowed in placeholders.
var transforms = map[string]func(string) string{
	"camelCase":    camelCase,
	"pascalCase":   pascalCase,
	"properCase":   pascalCase,
	"snakeCase":    joinLower("_"),
	"dashCase":     DashCase,
	"kebabCase":    DashCase,
	"kabobCase":    DashCase,
	"dotCase":      joinLower("."),
	"pathCase":     joinLower("/"),
	"constantCase": constantCase,
	"lowerCase":    strings.ToLower,
	"upperCase":    strings.ToUpper,
	"titleCase":    titleCase,
	"sentenceCase": sentenceCase,
}

// Transform applies the named transform to s.
func Transform(name, s string) (string, error) {
	fn, ok := transforms[name]
	if !ok {
		return "", fmt.Errorf("function %q not defined", name)
	}
	return fn(s), nil
}

// splitWords splits s into words on separators and case changes:
// "myHTTPServer_v2" -> ["my", "HTTP", "Server", "v2"].
func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && nextIsLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()

	return words
}

func joinLower(sep string) func(string) string {
	return func(s string) string {
		words := splitWords(s)
		for i := range words {
			words[i] = strings.ToLower(words[i])
		}
		return strings.Join(words, sep)
	}
}

// DashCase converts s to dash-case.
func DashCase(s string) string {
	return joinLower("-")(s)
}

func capitalize(word string) string {
	return cases.Title(language.Und).String(strings.ToLower(word))
}

func camelCase(s string) string {
	words := splitWords(s)
	for i := range words {
		if i == 0 {
			words[i] = strings.ToLower(words[i])
		} else {
			words[i] = capitalize(words[i])
		}
	}
	return strings.Join(words, "")
}

func pascalCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, "")
}

func constantCase(s string) string {
	return strings.ToUpper(joinLower("_")(s))
}

func titleCase(s string) string {
	words := splitWords(s)
	for i := range words {
		words[i] = capitalize(words[i])
	}
	return strings.Join(words, " ")
}

func sentenceCase(s string) string {
	words := splitWords(s)
	for i := range words {
		if i == 0 {
			words[i] = capitalize(words[i])
		} else {
			words[i] = strings.ToLower(words[i])
		}
	}
	return strings.Join(words, " ")
}
