package model

//go:generate go tool stringer -type=Category -trimprefix Category

// Category classifies a declaration of the interface description.
type Category int

const (
	CategoryNative          Category = iota // builtin C type, maps straight onto a Swift importable type
	CategoryEnum                            // plain enumeration
	CategoryBitmask                         // flag enumeration, C-side WGPU...Flags
	CategoryStructure                       // descriptor struct
	CategoryFunctionPointer                 // C function pointer, possibly a userdata callback
	CategoryFunction                        // free function
	CategoryObject                          // opaque handle with methods and reference/release
	CategoryTypedef                         // alias of another declaration
)

var categoryNames = map[string]Category{
	"native":           CategoryNative,
	"enum":             CategoryEnum,
	"bitmask":          CategoryBitmask,
	"structure":        CategoryStructure,
	"function pointer": CategoryFunctionPointer,
	"function":         CategoryFunction,
	"object":           CategoryObject,
	"typedef":          CategoryTypedef,
}

// ParseCategory maps a description category string to its Category.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryNames[s]
	return c, ok
}
