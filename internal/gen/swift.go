package gen

import (
	"fmt"

	"binding-generator/internal/emit"
	"binding-generator/internal/model"
)

func (g *Generator) enumDecls(m *model.Model) ([]string, error) {
	var decls []string

	for _, t := range m.TypesByCategory(model.CategoryEnum) {
		enum := t.(*model.EnumType)

		cases := emit.Each(enum.Values(), func(v *model.EnumValue) string {
			return fmt.Sprintf("case %s = %d", v.SwiftName(), v.Value())
		})

		var b emit.Builder
		b.AddEach(cases)

		decls = append(decls, g.em.Block("public enum "+enum.SwiftName()+": UInt32", b.Build()))
	}

	return decls, nil
}

func (g *Generator) optionSetDecls(m *model.Model) ([]string, error) {
	var decls []string

	for _, t := range m.TypesByCategory(model.CategoryBitmask) {
		bitmask := t.(*model.BitmaskType)
		name := bitmask.SwiftName()

		var constants []string
		for _, v := range bitmask.Values() {
			// The empty set needs no named constant; OptionSet gives it [].
			if v.Value() != 0 {
				constants = append(constants, fmt.Sprintf(
					"public static let %s = %s(rawValue: %d)", v.SwiftName(), name, v.Value()))
			}
		}

		var b emit.Builder
		b.Add("public let rawValue: UInt32")
		b.Add("")
		b.Add(g.em.Block("public init(rawValue: UInt32)", "self.rawValue = rawValue"))
		b.AddIf(len(constants) > 0, "")
		b.AddEach(constants)

		decls = append(decls, g.em.Block("public struct "+name+": OptionSet", b.Build()))
	}

	return decls, nil
}

func (g *Generator) structDecls(m *model.Model) ([]string, error) {
	var decls []string

	for _, t := range m.TypesByCategory(model.CategoryStructure) {
		structure := t.(*model.StructureType)

		var b emit.Builder

		for _, member := range structure.SwiftMembers() {
			line := fmt.Sprintf("public var %s: %s", member.SwiftName(), member.SwiftType())

			value, ok, err := member.DefaultSwiftValue()
			if err != nil {
				return nil, fmt.Errorf("struct %q member %q: %w", structure.Name(), member.Name(), err)
			}

			b.AddEither(ok, line+" = "+value, line)
		}

		decls = append(decls, g.em.Block("public struct "+structure.SwiftName(), b.Build()))
	}

	return decls, nil
}

func (g *Generator) classDecls(m *model.Model) ([]string, error) {
	var decls []string

	for _, t := range m.TypesByCategory(model.CategoryObject) {
		object := t.(*model.ObjectType)

		var b emit.Builder
		b.Add("let handle: " + object.CName() + "!")
		b.Add("")

		var init emit.Builder
		init.Add(object.ReferenceMethodName() + "(handle)")
		init.Add("self.handle = handle")
		b.Add(g.em.Block("init(handle: "+object.CName()+"!)", init.Build()))

		b.Add("")
		b.Add(g.em.Block("deinit", object.ReleaseMethodName()+"(handle)"))

		decls = append(decls, g.em.Block("public final class "+object.SwiftName(), b.Build()))
	}

	return decls, nil
}
