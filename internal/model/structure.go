package model

import (
	"fmt"
	"strings"

	"binding-generator/internal/naming"
	"binding-generator/internal/schema"
)

// StructureType is a descriptor struct of the interface description.
type StructureType struct {
	baseType

	extensible bool
	chained    bool
	members    []*Member
	sType      string
}

func newStructureType(name string, decl schema.TypeDecl) (*StructureType, error) {
	base, err := newBaseType(name, CategoryStructure, decl.Tags)
	if err != nil {
		return nil, err
	}

	members, err := enabledMembers(decl.Members)
	if err != nil {
		return nil, err
	}

	sPascal, err := naming.PascalCase(name, true)
	if err != nil {
		return nil, err
	}

	return &StructureType{
		baseType:   base,
		extensible: decl.Extensible,
		chained:    decl.Chained,
		members:    members,
		sType:      "WGPUSType_" + sPascal,
	}, nil
}

func (t *StructureType) Extensible() bool { return t.extensible }
func (t *StructureType) Chained() bool    { return t.chained }

// SType is the C-side chained-struct discriminator constant.
func (t *StructureType) SType() string { return t.sType }

func (t *StructureType) Members() []*Member { return t.members }

// SwiftMembers are the members exposed by the binding: length members are
// folded into the arrays they count.
func (t *StructureType) SwiftMembers() []*Member {
	swift := make([]*Member, 0, len(t.members))
	for _, m := range t.members {
		if m.lengthOf == nil {
			swift = append(swift, m)
		}
	}

	return swift
}

// HasDefaultSwiftInitializer reports whether every exposed member carries a
// default, making a bare init() expressible.
func (t *StructureType) HasDefaultSwiftInitializer() (bool, error) {
	for _, m := range t.SwiftMembers() {
		_, ok, err := m.DefaultSwiftValue()
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// SwiftValue renders a C brace-literal default ("{0.0f, 1.0f}") as a Swift
// .init call with labeled arguments.
func (t *StructureType) SwiftValue(v any) (string, error) {
	literal, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("structure %q: default %v is not a brace literal", t.name, v)
	}

	parts := strings.Split(strings.Trim(literal, "{}"), ",")

	n := min(len(t.members), len(parts))
	args := make([]string, 0, n)

	for i := 0; i < n; i++ {
		value, err := t.members[i].typ.SwiftValue(strings.TrimSpace(parts[i]))
		if err != nil {
			return "", err
		}

		args = append(args, t.members[i].swiftName+": "+value)
	}

	return ".init(" + strings.Join(args, ", ") + ")", nil
}

func (t *StructureType) link(types map[string]Type) error {
	for _, m := range t.members {
		err := m.link(types)
		if err != nil {
			return err
		}
	}

	return nil
}
