package emit

import "strings"

// Builder accumulates an ordered sequence of fragments and joins them into
// one fragment. The zero value is ready to use.
type Builder struct {
	frags []string
}

// Add appends a fragment to the sequence.
func (b *Builder) Add(frag string) *Builder {
	b.frags = append(b.frags, frag)
	return b
}

// AddIf appends frag only when cond is true. A false condition contributes
// nothing, not even an empty line.
func (b *Builder) AddIf(cond bool, frag string) *Builder {
	if cond {
		b.frags = append(b.frags, frag)
	}
	return b
}

// AddEither appends exactly one of the two alternatives.
func (b *Builder) AddEither(cond bool, then, els string) *Builder {
	if cond {
		b.frags = append(b.frags, then)
	} else {
		b.frags = append(b.frags, els)
	}
	return b
}

// AddEach appends every fragment of the collection in order. An empty
// collection contributes nothing and introduces no separator.
func (b *Builder) AddEach(frags []string) *Builder {
	b.frags = append(b.frags, frags...)
	return b
}

// Build joins the accumulated fragments with single newline separators,
// none trailing.
func (b *Builder) Build() string {
	return strings.Join(b.frags, "\n")
}

// Each maps a collection to fragments, one per item, for use with AddEach.
func Each[S ~[]T, T any](items S, fn func(T) string) []string {
	if len(items) == 0 {
		return nil
	}

	frags := make([]string, 0, len(items))
	for _, item := range items {
		frags = append(frags, fn(item))
	}

	return frags
}
