package emit

import "strings"

// DefaultUnit is the indentation unit of the shipped Swift dialect.
const DefaultUnit = "    "

// Emitter formats brace blocks with a fixed indentation unit.
type Emitter struct {
	unit string
}

// New creates an Emitter using the given indentation unit.
func New(unit string) *Emitter {
	return &Emitter{unit: unit}
}

// Swift returns an Emitter with four-space indentation.
func Swift() *Emitter {
	return New(DefaultUnit)
}

// Indent prefixes every line of the fragment with one indentation unit.
// Empty lines are prefixed too: a blank line inside an indented block comes
// out as a line holding only the unit. Generated files are compared
// byte-for-byte downstream, so this must not be trimmed.
func (e *Emitter) Indent(frag string) string {
	lines := strings.Split(frag, "\n")
	for i, line := range lines {
		lines[i] = e.unit + line
	}

	return strings.Join(lines, "\n")
}

// Block wraps body in a brace pair, indenting the body one level. A
// non-empty header becomes "header {"; an empty header a bare "{".
func (e *Emitter) Block(header, body string) string {
	open := "{"
	if header != "" {
		open = header + " {"
	}

	var b Builder
	b.Add(open)
	b.Add(e.Indent(body))
	b.Add("}")

	return b.Build()
}
