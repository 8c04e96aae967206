package core

import (
	"fmt"
	"strings"
)

// TemplateError reports an unknown placeholder or malformed
// substitution syntax in a template.
type TemplateError struct {
	Offset int // byte offset of the problem in the template text
	Reason string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Reason)
}

// ExpandTemplate substitutes named placeholders of the form {name}
// into text, using the values map. Doubled braces ("{{" and "}}") are
// escapes for literal braces, matching the format semantics the
// templates were originally written against. Referencing a name not
// present in values, or leaving a brace unmatched, is an error.
func ExpandTemplate(text string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				return "", &TemplateError{Offset: i, Reason: "unclosed placeholder"}
			}

			name := text[i+1 : i+end]
			if !validPlaceholderName(name) {
				return "", &TemplateError{Offset: i, Reason: fmt.Sprintf("malformed placeholder {%s}", name)}
			}

			value, ok := values[name]
			if !ok {
				return "", &TemplateError{Offset: i, Reason: fmt.Sprintf("unknown placeholder {%s}", name)}
			}

			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &TemplateError{Offset: i, Reason: "single '}' outside a placeholder"}
		default:
			b.WriteByte(text[i])
			i++
		}
	}

	return b.String(), nil
}

// validPlaceholderName reports whether name is a valid identifier:
// letters, digits and underscores, not starting with a digit.
func validPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
