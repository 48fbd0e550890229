package model

import (
	"errors"
	"fmt"
	"strings"

	"binding-generator/internal/naming"
)

var (
	ErrUnknownType   = errors.New("reference to unknown type")
	ErrUnknownNative = errors.New("native type has no known mapping")
)

// Type is one linked declaration of the interface description.
type Type interface {
	// Name is the description name, a space-delimited phrase.
	Name() string
	Category() Category
	Tags() []string
	// CName is the C-side spelling imported from the native header.
	CName() string
	// SwiftName is the name the binding exposes.
	SwiftName() string
	// SwiftValue renders a description default value in Swift syntax.
	SwiftValue(v any) (string, error)

	link(types map[string]Type) error
}

type baseType struct {
	name      string
	category  Category
	tags      []string
	cName     string
	swiftName string
}

func newBaseType(name string, category Category, tags []string) (baseType, error) {
	cPascal, err := naming.PascalCase(name, true)
	if err != nil {
		return baseType{}, err
	}

	swiftName, err := naming.PascalCase(name, false)
	if err != nil {
		return baseType{}, err
	}

	return baseType{
		name:      name,
		category:  category,
		tags:      tags,
		cName:     "WGPU" + cPascal,
		swiftName: swiftName,
	}, nil
}

func (t *baseType) Name() string       { return t.name }
func (t *baseType) Category() Category { return t.category }
func (t *baseType) Tags() []string     { return t.tags }
func (t *baseType) CName() string      { return t.cName }
func (t *baseType) SwiftName() string  { return t.swiftName }

func (t *baseType) SwiftValue(v any) (string, error) {
	return fmt.Sprint(v), nil
}

func (t *baseType) link(map[string]Type) error { return nil }

// nativeCNames maps description native types onto their Swift importable
// spelling.
var nativeCNames = map[string]string{
	"void":         "Void",
	"void *":       "UnsafeMutableRawPointer!",
	"void const *": "UnsafeRawPointer!",
	"char":         "CChar",
	"float":        "Float",
	"double":       "Double",
	"uint8_t":      "UInt8",
	"uint16_t":     "UInt16",
	"uint32_t":     "UInt32",
	"uint64_t":     "UInt64",
	"int32_t":      "Int32",
	"int64_t":      "Int64",
	"size_t":       "Int",
	"int":          "Int32",
	"bool":         "Bool",
}

// NativeType is a builtin C type whose C and Swift spellings coincide.
type NativeType struct {
	baseType
}

func newNativeType(name string, tags []string) (*NativeType, error) {
	cName, ok := nativeCNames[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNative, name)
	}

	return &NativeType{baseType{
		name:      name,
		category:  CategoryNative,
		tags:      tags,
		cName:     cName,
		swiftName: cName,
	}}, nil
}

func (t *NativeType) SwiftValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		if strings.HasPrefix(s, "WGPU_") {
			return fmt.Sprintf("%s(%s)", t.swiftName, s), nil
		}

		if s == "NAN" {
			return ".nan", nil
		}

		if t.name == "float" {
			return strings.TrimSuffix(s, "f"), nil
		}
	}

	return fmt.Sprint(v), nil
}

// TypedefType aliases another declaration.
type TypedefType struct {
	baseType
	targetName string
	target     Type
}

func newTypedefType(name string, targetName string, tags []string) (*TypedefType, error) {
	base, err := newBaseType(name, CategoryTypedef, tags)
	if err != nil {
		return nil, err
	}

	return &TypedefType{baseType: base, targetName: targetName}, nil
}

// Target returns the aliased type. Valid after linking.
func (t *TypedefType) Target() Type { return t.target }

func (t *TypedefType) link(types map[string]Type) error {
	target, ok := types[t.targetName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownType, t.targetName)
	}

	t.target = target

	return nil
}
