package model

import (
	"fmt"
	"slices"

	"binding-generator/internal/schema"
)

// tagSet is the set of enabled description tags. The nil set enables
// everything.
type tagSet map[string]struct{}

// allows reports whether a declaration carrying the given tags is enabled:
// it is when it has no tags, or when all of them are enabled.
func (s tagSet) allows(tags []string) bool {
	if len(tags) == 0 || s == nil {
		return true
	}

	for _, tag := range tags {
		if _, ok := s[tag]; !ok {
			return false
		}
	}

	return true
}

// memberEnabled drops members that only exist on the upstream surface.
func memberEnabled(tags []string) bool {
	return !slices.Contains(tags, "upstream")
}

// Model is the linked type model of one interface description.
type Model struct {
	types map[string]Type
	order []string
}

// New builds and links a Model. enabledTags of nil enables every tagged
// declaration; otherwise a declaration survives only if all its tags are in
// the slice. Unknown categories are skipped; unknown type references are
// link errors.
func New(desc *schema.Description, enabledTags []string) (*Model, error) {
	var enabled tagSet
	if enabledTags != nil {
		enabled = make(tagSet, len(enabledTags))
		for _, tag := range enabledTags {
			enabled[tag] = struct{}{}
		}
	}

	m := &Model{types: make(map[string]Type, len(desc.Decls))}

	for _, d := range desc.Decls {
		if !enabled.allows(d.Tags) {
			continue
		}

		category, ok := ParseCategory(d.Category)
		if !ok {
			continue
		}

		t, err := newType(d, category, enabled)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", d.Name, err)
		}

		m.types[d.Name] = t
		m.order = append(m.order, d.Name)
	}

	for _, name := range m.order {
		err := m.types[name].link(m.types)
		if err != nil {
			return nil, fmt.Errorf("linking %q: %w", name, err)
		}
	}

	return m, nil
}

func newType(d schema.Decl, category Category, enabled tagSet) (Type, error) {
	switch category {
	case CategoryNative:
		return newNativeType(d.Name, d.Tags)
	case CategoryEnum:
		return newEnumType(d.Name, d.TypeDecl, enabled)
	case CategoryBitmask:
		return newBitmaskType(d.Name, d.TypeDecl, enabled)
	case CategoryStructure:
		return newStructureType(d.Name, d.TypeDecl)
	case CategoryFunctionPointer:
		return newFunctionPointerType(d.Name, d.TypeDecl, CategoryFunctionPointer)
	case CategoryFunction:
		return newFunctionType(d.Name, d.TypeDecl)
	case CategoryObject:
		return newObjectType(d.Name, d.TypeDecl, enabled)
	case CategoryTypedef:
		return newTypedefType(d.Name, d.Type, d.Tags)
	}

	return nil, fmt.Errorf("unhandled category %v", category)
}

// Lookup returns the type declared under the given description name.
func (m *Model) Lookup(name string) (Type, bool) {
	t, ok := m.types[name]
	return t, ok
}

// Types returns every type in declaration order.
func (m *Model) Types() []Type {
	types := make([]Type, 0, len(m.order))
	for _, name := range m.order {
		types = append(types, m.types[name])
	}

	return types
}

// TypesByCategory returns the types of one category in declaration order.
func (m *Model) TypesByCategory(category Category) []Type {
	var types []Type
	for _, name := range m.order {
		if t := m.types[name]; t.Category() == category {
			types = append(types, t)
		}
	}

	return types
}
