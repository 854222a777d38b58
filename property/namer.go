package property

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Accessor method prefixes.
const (
	PrefixGet = "Get"
	PrefixIs  = "Is"
	PrefixSet = "Set"
)

// MethodToProperty converts an accessor method name into its property name.
// "GetName" -> "name", "IsActive" -> "active", "SetURL" -> "URL".
// It returns false when name is not an accessor name.
func MethodToProperty(name string) (string, bool) {
	var rest string

	switch {
	case hasAccessorPrefix(name, PrefixIs):
		rest = name[len(PrefixIs):]
	case hasAccessorPrefix(name, PrefixGet):
		rest = name[len(PrefixGet):]
	case hasAccessorPrefix(name, PrefixSet):
		rest = name[len(PrefixSet):]
	default:
		return "", false
	}

	return decapitalize(rest), true
}

// FieldToProperty converts an exported field name into its property name,
// using the same case rule as MethodToProperty so that field Name and
// method GetName bind the same property.
func FieldToProperty(name string) string {
	return decapitalize(name)
}

// IsProperty reports whether name is a getter or setter name.
func IsProperty(name string) bool {
	return IsGetter(name) || IsSetter(name)
}

// IsGetter reports whether name has a getter prefix ("Get" or "Is") followed by a property name.
func IsGetter(name string) bool {
	return hasAccessorPrefix(name, PrefixGet) || hasAccessorPrefix(name, PrefixIs)
}

// IsSetter reports whether name has the "Set" prefix followed by a property name.
func IsSetter(name string) bool {
	return hasAccessorPrefix(name, PrefixSet)
}

// hasAccessorPrefix requires a non-empty remainder that does not start with a
// lower-case letter, so that "Issue" or "Getaway" are not accessors.
func hasAccessorPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(name[len(prefix):])

	return !unicode.IsLower(r)
}

// decapitalize lower-cases the first rune unless the second one is upper case.
// "Name" -> "name", "X" -> "x", "URL" -> "URL".
func decapitalize(s string) string {
	if s == "" {
		return s
	}

	first, size := utf8.DecodeRuneInString(s)
	if size < len(s) {
		second, _ := utf8.DecodeRuneInString(s[size:])
		if unicode.IsUpper(second) {
			return s
		}
	}

	return string(unicode.ToLower(first)) + s[size:]
}
