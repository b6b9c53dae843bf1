package template

import (
	"fmt"
	"strings"
)

// Vars maps token names to replacement values, e.g. {"package": "myapp"}.
type Vars map[string]string

// Merge returns a new map holding v overlaid with other. Keys in other win.
func (v Vars) Merge(other Vars) Vars {
	out := make(Vars, len(v)+len(other))
	for k, val := range v {
		out[k] = val
	}
	for k, val := range other {
		out[k] = val
	}
	return out
}

// Unresolved describes a marker that was left verbatim because no variable
// matched it.
type Unresolved struct {
	Pos    Position
	Marker string
}

func (u Unresolved) String() string {
	if u.Pos.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", u.Pos.File, u.Pos.Line, u.Pos.Column, u.Marker)
	}
	return fmt.Sprintf("%d:%d: %s", u.Pos.Line, u.Pos.Column, u.Marker)
}

// Substitute replaces every {{ name }} marker whose name is a key of vars.
// All other text, including unknown or malformed markers, is kept as is.
func Substitute(s string, vars Vars) string {
	out, _ := Render(s, "", vars)
	return out
}

// SubstituteBytes is Substitute for byte slices.
func SubstituteBytes(b []byte, vars Vars) []byte {
	return []byte(Substitute(string(b), vars))
}

// Render is Substitute that also reports the markers it could not resolve.
// file annotates the reported positions.
func Render(s, file string, vars Vars) (string, []Unresolved) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}

	var (
		b          strings.Builder
		unresolved []Unresolved
	)
	b.Grow(len(s))

	for _, tok := range NewLexer(s, file).Tokenize() {
		switch tok.Type {
		case TokenText:
			b.WriteString(tok.Value)
		case TokenMarker:
			if val, ok := vars[tok.Value]; ok {
				b.WriteString(val)
				continue
			}
			b.WriteString(tok.Raw)
			unresolved = append(unresolved, Unresolved{Pos: tok.Pos, Marker: tok.Raw})
		}
	}

	return b.String(), unresolved
}
