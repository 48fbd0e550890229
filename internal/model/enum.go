package model

import (
	"fmt"
	"unicode"

	"binding-generator/internal/naming"
	"binding-generator/internal/schema"
)

// EnumValue is one case of an enum or bitmask declaration.
type EnumValue struct {
	name      string
	value     int
	tags      []string
	swiftName string
}

func (v *EnumValue) Name() string      { return v.name }
func (v *EnumValue) Value() int        { return v.value }
func (v *EnumValue) SwiftName() string { return v.swiftName }

// EnumType is a plain enumeration.
type EnumType struct {
	baseType

	// requiresPrefix is set when any case name starts with a digit; Swift
	// case names cannot, so every case gets a "type" prefix ("1d" becomes
	// "type1d").
	requiresPrefix bool
	values         []*EnumValue
}

func newEnumType(name string, decl schema.TypeDecl, enabled tagSet) (*EnumType, error) {
	base, err := newBaseType(name, CategoryEnum, decl.Tags)
	if err != nil {
		return nil, err
	}

	t := &EnumType{baseType: base}

	var kept []schema.ValueDecl
	for _, v := range decl.Values {
		if !enabled.allows(v.Tags) {
			continue
		}

		kept = append(kept, v)

		if v.Name != "" && unicode.IsDigit(rune(v.Name[0])) {
			t.requiresPrefix = true
		}
	}

	for _, v := range kept {
		swiftName, err := t.caseName(v.Name)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", v.Name, err)
		}

		t.values = append(t.values, &EnumValue{
			name:      v.Name,
			value:     v.Value,
			tags:      v.Tags,
			swiftName: naming.SwiftSafe(swiftName),
		})
	}

	return t, nil
}

func (t *EnumType) Values() []*EnumValue { return t.values }

// RequiresPrefix reports whether case names carry the digit-guard prefix.
func (t *EnumType) RequiresPrefix() bool { return t.requiresPrefix }

// SwiftValue renders a description default (a case name) as a leading-dot
// case reference.
func (t *EnumType) SwiftValue(v any) (string, error) {
	name, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("enum %q: default %v is not a case name", t.name, v)
	}

	caseName, err := t.caseName(name)
	if err != nil {
		return "", err
	}

	return "." + caseName, nil
}

func (t *EnumType) caseName(name string) (string, error) {
	if t.requiresPrefix {
		name = "type " + name
	}

	return naming.CamelCase(name, false)
}

// BitmaskType is a flag enumeration. Its C-side name carries the Flags
// suffix; everything else matches EnumType.
type BitmaskType struct {
	EnumType
}

func newBitmaskType(name string, decl schema.TypeDecl, enabled tagSet) (*BitmaskType, error) {
	enum, err := newEnumType(name, decl, enabled)
	if err != nil {
		return nil, err
	}

	enum.category = CategoryBitmask

	return &BitmaskType{EnumType: *enum}, nil
}

func (t *BitmaskType) CName() string {
	return t.EnumType.CName() + "Flags"
}
