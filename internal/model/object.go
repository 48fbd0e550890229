package model

import (
	"binding-generator/internal/naming"
	"binding-generator/internal/schema"
)

// ObjectType is an opaque handle with methods and C-side
// reference/release entry points.
type ObjectType struct {
	baseType

	methods     []*MethodType
	refName     string
	releaseName string
}

func newObjectType(name string, decl schema.TypeDecl, enabled tagSet) (*ObjectType, error) {
	base, err := newBaseType(name, CategoryObject, decl.Tags)
	if err != nil {
		return nil, err
	}

	pascal, err := naming.PascalCase(name, true)
	if err != nil {
		return nil, err
	}

	t := &ObjectType{
		baseType:    base,
		refName:     "wgpu" + pascal + "Reference",
		releaseName: "wgpu" + pascal + "Release",
	}

	for _, m := range decl.Methods {
		if !enabled.allows(m.Tags) {
			continue
		}

		method, err := newMethodType(name, m)
		if err != nil {
			return nil, err
		}

		t.methods = append(t.methods, method)
	}

	return t, nil
}

func (t *ObjectType) Methods() []*MethodType { return t.methods }

// ReferenceMethodName is the C entry point taking a strong reference.
func (t *ObjectType) ReferenceMethodName() string { return t.refName }

// ReleaseMethodName is the C entry point dropping one.
func (t *ObjectType) ReleaseMethodName() string { return t.releaseName }

func (t *ObjectType) link(types map[string]Type) error {
	for _, m := range t.methods {
		err := m.link(types)
		if err != nil {
			return err
		}
	}

	return nil
}
