package naming_test

import (
	"fmt"
	"testing"

	"binding-generator/internal/naming"

	"github.com/stretchr/testify/assert"
)

func ExampleSwiftSafe() {
	fmt.Println(naming.SwiftSafe("repeat"))
	fmt.Println(naming.SwiftSafe("vertexCount"))

	// Output:
	// `repeat`
	// vertexCount
}

func TestSwiftSafe(t *testing.T) {
	tests := []struct {
		ident    string
		expected string
	}{
		{"repeat", "`repeat`"},
		{"internal", "`internal`"},
		{"default", "`default`"},
		{"foo", "foo"},
		{"repeatCount", "repeatCount"},
		{"Repeat", "Repeat"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.SwiftSafe(tt.ident))
		})
	}
}

func TestSanitizerCustomDialect(t *testing.T) {
	s := naming.NewSanitizer([]string{"type", "func"}, "@")

	assert.Equal(t, "@type@", s.Sanitize("type"))
	assert.Equal(t, "@func@", s.Sanitize("func"))
	assert.Equal(t, "repeat", s.Sanitize("repeat"),
		"only the configured set is escaped")
}
