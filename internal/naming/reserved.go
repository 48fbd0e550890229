package naming

// Sanitizer escapes identifiers colliding with a dialect's reserved words
// by wrapping them in the dialect's verbatim-identifier quoting.
type Sanitizer struct {
	reserved map[string]struct{}
	quote    string
}

// NewSanitizer builds a Sanitizer for the given reserved-word set and
// quote delimiter.
func NewSanitizer(reserved []string, quote string) *Sanitizer {
	set := make(map[string]struct{}, len(reserved))
	for _, word := range reserved {
		set[word] = struct{}{}
	}

	return &Sanitizer{reserved: set, quote: quote}
}

// Sanitize returns the identifier unchanged unless it is a reserved word,
// in which case it comes back quoted. Total: any string is valid input.
func (s *Sanitizer) Sanitize(ident string) string {
	if _, ok := s.reserved[ident]; ok {
		return s.quote + ident + s.quote
	}

	return ident
}

// SwiftReserved lists the Swift keywords that clash with member and case
// names generated from an interface description. Swift escapes them with
// backticks.
var SwiftReserved = []string{
	"associatedtype", "class", "deinit", "enum", "extension", "fileprivate",
	"func", "import", "init", "inout", "internal", "let", "open", "operator",
	"private", "protocol", "public", "rethrows", "static", "struct",
	"subscript", "typealias", "var",
	"break", "case", "continue", "default", "defer", "do", "else",
	"fallthrough", "for", "guard", "if", "in", "repeat", "return", "switch",
	"where", "while",
	"as", "catch", "false", "is", "nil", "self", "super", "throw", "throws",
	"true", "try",
}

var swift = NewSanitizer(SwiftReserved, "`")

// SwiftSafe escapes identifiers that collide with Swift keywords.
func SwiftSafe(ident string) string {
	return swift.Sanitize(ident)
}
