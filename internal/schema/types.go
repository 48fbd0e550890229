package schema

// Description is the parsed interface description: every non-metadata
// top-level entry, in declaration order.
type Description struct {
	Decls []Decl
}

// Decl is one named type declaration.
type Decl struct {
	Name string
	TypeDecl
}

// TypeDecl carries the category-specific payload of a declaration. Unused
// fields stay zero; Category decides which ones are meaningful.
type TypeDecl struct {
	Category   string       `yaml:"category"`
	Tags       []string     `yaml:"tags,omitempty"`
	Values     []ValueDecl  `yaml:"values,omitempty"`
	Members    []MemberDecl `yaml:"members,omitempty"`
	Methods    []MethodDecl `yaml:"methods,omitempty"`
	Args       []MemberDecl `yaml:"args,omitempty"`
	Returns    string       `yaml:"returns,omitempty"`
	Type       string       `yaml:"type,omitempty"`
	Extensible bool         `yaml:"extensible,omitempty"`
	Chained    bool         `yaml:"chained,omitempty"`
}

// ValueDecl is one enum or bitmask value.
type ValueDecl struct {
	Name  string   `yaml:"name"`
	Value int      `yaml:"value"`
	Tags  []string `yaml:"tags,omitempty"`
}

// MemberDecl is a structure member or a function argument.
type MemberDecl struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Annotation string   `yaml:"annotation,omitempty"`
	Length     string   `yaml:"length,omitempty"`
	Optional   bool     `yaml:"optional,omitempty"`
	Default    any      `yaml:"default,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
}

// MethodDecl is one method of an object declaration.
type MethodDecl struct {
	Name    string       `yaml:"name"`
	Returns string       `yaml:"returns,omitempty"`
	Args    []MemberDecl `yaml:"args,omitempty"`
	Tags    []string     `yaml:"tags,omitempty"`
}
