package model

import (
	"fmt"
	"strings"

	"binding-generator/internal/naming"
	"binding-generator/internal/schema"
)

// FunctionPointerType is a C function pointer declaration. Ones taking a
// trailing userdata argument are callbacks and get Swift closure
// trampolines.
type FunctionPointerType struct {
	baseType

	args        []*Member
	returnsName string
	returnType  Type

	callbackName string
}

func newFunctionPointerType(name string, decl schema.TypeDecl, category Category) (*FunctionPointerType, error) {
	base, err := newBaseType(name, category, decl.Tags)
	if err != nil {
		return nil, err
	}

	args, err := enabledMembers(decl.Args)
	if err != nil {
		return nil, err
	}

	callbackName, err := naming.CamelCase(name, false)
	if err != nil {
		return nil, err
	}

	return &FunctionPointerType{
		baseType:     base,
		args:         args,
		returnsName:  decl.Returns,
		callbackName: callbackName,
	}, nil
}

func (t *FunctionPointerType) Args() []*Member { return t.args }

// ReturnType is nil for void. Valid after linking.
func (t *FunctionPointerType) ReturnType() Type { return t.returnType }

// IsCallback reports whether the pointer follows the userdata callback
// convention.
func (t *FunctionPointerType) IsCallback() bool {
	for _, arg := range t.args {
		if arg.name == "userdata" {
			return true
		}
	}

	return false
}

// CallbackFunctionName is the Swift name of the callback trampoline.
func (t *FunctionPointerType) CallbackFunctionName() string { return t.callbackName }

// SwiftArgs are the arguments exposed to Swift callers: length arguments
// and the userdata slot are carried implicitly.
func (t *FunctionPointerType) SwiftArgs() []*Member {
	swift := make([]*Member, 0, len(t.args))
	for _, arg := range t.args {
		if arg.lengthOf == nil && arg.name != "userdata" {
			swift = append(swift, arg)
		}
	}

	return swift
}

// SwiftReturnType returns the Swift spelling of the return type, or false
// for void. A function-pointer return comes back optional.
func (t *FunctionPointerType) SwiftReturnType() (string, bool) {
	if t.returnType == nil {
		return "", false
	}

	if _, ok := t.returnType.(*FunctionPointerType); ok {
		return t.returnType.SwiftName() + "?", true
	}

	return t.returnType.SwiftName(), true
}

func (t *FunctionPointerType) link(types map[string]Type) error {
	if t.returnsName != "" && t.returnsName != "void" {
		ret, ok := types[t.returnsName]
		if !ok {
			return fmt.Errorf("returns: %w: %q", ErrUnknownType, t.returnsName)
		}

		t.returnType = ret
	}

	for _, arg := range t.args {
		err := arg.link(types)
		if err != nil {
			return err
		}
	}

	return nil
}

// FunctionType is a free function of the C API.
type FunctionType struct {
	FunctionPointerType

	cProcName     string
	cFunctionName string
	swiftFuncName string
}

func newFunctionType(name string, decl schema.TypeDecl) (*FunctionType, error) {
	fp, err := newFunctionPointerType(name, decl, CategoryFunction)
	if err != nil {
		return nil, err
	}

	pascal, err := naming.PascalCase(name, true)
	if err != nil {
		return nil, err
	}

	camel, err := naming.CamelCase(name, false)
	if err != nil {
		return nil, err
	}

	return &FunctionType{
		FunctionPointerType: *fp,
		cProcName:           "WGPUProc" + pascal,
		cFunctionName:       "wgpu" + pascal,
		swiftFuncName:       camel,
	}, nil
}

func (t *FunctionType) CName() string { return t.cProcName }

// CFunctionName is the C entry point the binding calls.
func (t *FunctionType) CFunctionName() string { return t.cFunctionName }

// SwiftFunctionName is the name of the generated Swift function.
func (t *FunctionType) SwiftFunctionName() string { return t.swiftFuncName }

// HideFirstArgLabel reports whether the function name already ends in its
// first argument's name, so the Swift label would read twice.
func (t *FunctionType) HideFirstArgLabel() bool {
	return len(t.args) > 0 && strings.HasSuffix(t.name, " "+t.args[0].name)
}

// MethodType is a function scoped to an object declaration.
type MethodType struct {
	FunctionType

	objectName string
	getter     bool
}

func newMethodType(objectName string, decl schema.MethodDecl) (*MethodType, error) {
	fn, err := newFunctionType(decl.Name, schema.TypeDecl{
		Tags:    decl.Tags,
		Args:    decl.Args,
		Returns: decl.Returns,
	})
	if err != nil {
		return nil, err
	}

	objPascal, err := naming.PascalCase(objectName, true)
	if err != nil {
		return nil, err
	}

	namePascal, err := naming.PascalCase(decl.Name, true)
	if err != nil {
		return nil, err
	}

	m := &MethodType{FunctionType: *fn, objectName: objectName}
	m.cProcName = "WGPUProc" + objPascal + namePascal
	m.cFunctionName = "wgpu" + objPascal + namePascal

	return m, nil
}

func (t *MethodType) ObjectName() string { return t.objectName }

// IsGetter reports whether the method reads as a property: a no-argument
// "get ..." with a return value. Valid after linking.
func (t *MethodType) IsGetter() bool { return t.getter }

// IsCallbackSetter reports whether the method registers a callback.
func (t *MethodType) IsCallbackSetter() bool {
	return strings.HasPrefix(t.name, "set ") && strings.HasSuffix(t.name, " callback")
}

func (t *MethodType) link(types map[string]Type) error {
	err := t.FunctionPointerType.link(types)
	if err != nil {
		return err
	}

	t.getter = t.returnType != nil && len(t.args) == 0 && strings.HasPrefix(t.name, "get ")

	// Getters drop the "get " verb from their Swift name.
	name := t.name
	if t.getter {
		name = strings.TrimPrefix(name, "get ")
	}

	t.swiftFuncName, err = naming.CamelCase(name, false)

	return err
}
