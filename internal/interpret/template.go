package interpret

import "strings"

// Values maps slot names to their substitutions.
type Values map[string]string

// Template is text with {SLOT} placeholders. Slot names are upper-case
// letters, digits and underscores.
type Template string

// Render substitutes every slot in a single left-to-right pass. Substituted
// values are never rescanned, and slots missing from v render empty.
func (t Template) Render(v Values) string {
	s := string(t)
	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open+1:], '}')
		if end < 0 {
			break
		}
		name := s[open+1 : open+1+end]
		if !isSlotName(name) {
			b.WriteString(s[:open+1])
			s = s[open+1:]
			continue
		}
		b.WriteString(s[:open])
		b.WriteString(v[name])
		s = s[open+end+2:]
	}
	b.WriteString(s)
	return b.String()
}

// Slots lists the slot names in order of first appearance.
func (t Template) Slots() []string {
	var out []string
	seen := map[string]bool{}
	s := string(t)
	for {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			return out
		}
		end := strings.IndexByte(s[open+1:], '}')
		if end < 0 {
			return out
		}
		name := s[open+1 : open+1+end]
		if !isSlotName(name) {
			s = s[open+1:]
			continue
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
		s = s[open+end+2:]
	}
}

func isSlotName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
