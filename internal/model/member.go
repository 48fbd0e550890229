package model

import (
	"fmt"
	"strings"

	"binding-generator/internal/naming"
	"binding-generator/internal/schema"
)

// Member is a structure member or a function argument.
type Member struct {
	name       string
	annotation string
	length     string
	optional   bool
	defaultVal any
	tags       []string

	typeName string
	typ      Type

	// lengthMember is the member holding this member's element count;
	// lengthOf points the other way.
	lengthMember *Member
	lengthOf     *Member

	cName     string
	swiftName string
}

func newMember(decl schema.MemberDecl) (*Member, error) {
	cName, err := naming.CamelCase(decl.Name, true)
	if err != nil {
		return nil, err
	}

	// Multi-word names get camel-cased; single-word names pass through
	// verbatim so deliberate casing like "sType" survives.
	swiftName := decl.Name
	if strings.Contains(decl.Name, " ") {
		swiftName, err = naming.CamelCase(decl.Name, false)
		if err != nil {
			return nil, err
		}
	}

	return &Member{
		name:       decl.Name,
		annotation: decl.Annotation,
		length:     decl.Length,
		optional:   decl.Optional,
		defaultVal: decl.Default,
		tags:       decl.Tags,
		typeName:   decl.Type,
		cName:      cName,
		swiftName:  naming.SwiftSafe(swiftName),
	}, nil
}

func (m *Member) Name() string       { return m.name }
func (m *Member) Annotation() string { return m.annotation }
func (m *Member) Length() string     { return m.length }
func (m *Member) Optional() bool     { return m.optional }
func (m *Member) Default() any       { return m.defaultVal }
func (m *Member) CName() string      { return m.cName }
func (m *Member) SwiftName() string  { return m.swiftName }

// Type returns the member's resolved type. Valid after linking.
func (m *Member) Type() Type { return m.typ }

// LengthMember returns the member carrying this member's count, if any.
func (m *Member) LengthMember() *Member { return m.lengthMember }

// LengthOf returns the member this member is the count of, if any.
func (m *Member) LengthOf() *Member { return m.lengthOf }

// TargetSwiftName is the Swift name a value for this member lands on: a
// length member is subsumed by the array it counts.
func (m *Member) TargetSwiftName() string {
	if m.lengthOf != nil {
		return m.lengthOf.swiftName
	}

	return m.swiftName
}

// CType is the Swift spelling of the member's C-side type.
func (m *Member) CType() string {
	switch m.annotation {
	case "const*":
		if m.typ.Name() == "void" {
			return "UnsafeRawPointer!"
		}

		if m.typ.Category() == CategoryObject {
			return "UnsafePointer<" + m.typ.CName() + "?>!"
		}

		return "UnsafePointer<" + m.typ.CName() + ">!"

	case "*":
		if m.typ.Name() == "void" {
			return "UnsafeMutableRawPointer!"
		}

		return "UnsafeMutablePointer<" + m.typ.CName() + ">!"
	}

	if m.typ.Category() == CategoryObject {
		return m.typ.CName() + "!"
	}

	return m.typ.CName()
}

// SwiftType is the binding-side type of the member: strings, arrays, and
// by-value structures become idiomatic Swift, anything else keeps its
// C-interop spelling.
func (m *Member) SwiftType() string {
	var swiftType string

	switch {
	case m.typ.Name() == "char" && m.annotation == "const*":
		swiftType = "String"

	case m.annotation == "const*" && m.length != "":
		if m.typ.Name() == "void" {
			swiftType = "UnsafeRawBufferPointer"
		} else {
			swiftType = "[" + m.typ.SwiftName() + "]"
		}

	case m.annotation == "" || (m.annotation == "const*" && m.typ.Category() == CategoryStructure):
		swiftType = m.typ.SwiftName()

	default:
		return m.CType()
	}

	if m.typ.Category() == CategoryFunctionPointer {
		swiftType = "@escaping " + swiftType
	}

	if m.optional {
		swiftType += "?"
	}

	return swiftType
}

// DefaultSwiftValue renders the member's default in Swift syntax. The
// second result reports whether the member has one.
func (m *Member) DefaultSwiftValue() (string, bool, error) {
	if m.optional {
		return "nil", true, nil
	}

	if m.lengthMember != nil && (m.lengthMember.defaultVal == 0 || m.lengthMember.defaultVal == "0") {
		return "[]", true, nil
	}

	if truthy(m.defaultVal) {
		v, err := m.typ.SwiftValue(m.defaultVal)
		if err != nil {
			return "", false, err
		}

		return v, true, nil
	}

	if structure, ok := m.typ.(*StructureType); ok && m.annotation == "" {
		hasInit, err := structure.HasDefaultSwiftInitializer()
		if err != nil {
			return "", false, err
		}

		if hasInit {
			return structure.SwiftName() + "()", true, nil
		}
	}

	return "", false, nil
}

func (m *Member) link(types map[string]Type) error {
	typ, ok := types[m.typeName]
	if !ok {
		return fmt.Errorf("member %q: %w: %q", m.name, ErrUnknownType, m.typeName)
	}

	m.typ = typ

	return nil
}

// truthy mirrors the description convention that zero-ish defaults mean
// "no default".
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case int:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	}

	return true
}

// linkLengths wires length-member pairs within one member list.
func linkLengths(members []*Member) {
	byName := make(map[string]*Member, len(members))
	byLength := make(map[string]*Member)

	for _, m := range members {
		byName[m.name] = m

		if m.length != "" {
			byLength[m.length] = m
		}
	}

	for _, m := range members {
		m.lengthMember = byName[m.length]
		m.lengthOf = byLength[m.name]
	}
}

// enabledMembers drops members tagged for the upstream-only surface.
func enabledMembers(decls []schema.MemberDecl) ([]*Member, error) {
	members := make([]*Member, 0, len(decls))

	for _, d := range decls {
		if !memberEnabled(d.Tags) {
			continue
		}

		m, err := newMember(d)
		if err != nil {
			return nil, err
		}

		members = append(members, m)
	}

	linkLengths(members)

	return members, nil
}
