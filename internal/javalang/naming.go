package javalang

import (
	"strings"
	"unicode"
)

// ClassName converts s to a valid Java/Kotlin class name in PascalCase.
// A leading digit is guarded with "X" and reserved words get a trailing
// underscore.
func ClassName(s string) string {
	words := splitWords(s)
	var result strings.Builder
	for _, word := range words {
		result.WriteString(capitalize(word))
	}
	name := result.String()
	if len(name) == 0 {
		return "X"
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "X" + name
	}
	return EscapeKeyword(name)
}

// PackageName derives a package name from Maven-style group and artifact
// identifiers: lower-cased, invalid runes dropped, keyword segments escaped.
func PackageName(group, artifact string) string {
	base := group
	if artifact != "" {
		base = group + "." + artifact
	}

	var segments []string
	for _, seg := range strings.FieldsFunc(base, func(r rune) bool {
		return r == '.' || r == '-' || r == ' '
	}) {
		cleaned := cleanSegment(seg)
		if cleaned == "" {
			continue
		}
		segments = append(segments, EscapeKeyword(cleaned))
	}
	return strings.Join(segments, ".")
}

// PackagePath converts a dotted package name to a directory path.
func PackagePath(pkg string) string {
	return strings.ReplaceAll(pkg, ".", "/")
}

func cleanSegment(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		case r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	for i, r := range s {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				if current.Len() > 0 {
					words = append(words, current.String())
					current.Reset()
				}
			}
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

var javaKeywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true, "goto": true,
	"if": true, "implements": true, "import": true, "instanceof": true,
	"int": true, "interface": true, "long": true, "native": true, "new": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "try": true,
	"void": true, "volatile": true, "while": true,
}

// EscapeKeyword appends an underscore when s is a Java reserved word.
func EscapeKeyword(s string) string {
	if javaKeywords[strings.ToLower(s)] {
		return s + "_"
	}
	return s
}
