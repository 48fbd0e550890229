package naming_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"binding-generator/internal/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleCamelCase() {
	camel, _ := naming.CamelCase("buffer map async status", false)
	pascal, _ := naming.PascalCase("buffer map async status", false)
	fmt.Println(camel)
	fmt.Println(pascal)

	// Output:
	// bufferMapAsyncStatus
	// BufferMapAsyncStatus
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		phrase   string
		preserve bool
		expected string
	}{
		{"device", false, "device"},
		{"create buffer", false, "createBuffer"},
		{"buffer map async status", false, "bufferMapAsyncStatus"},
		{"texture view 2d", false, "textureView2d"},

		// Without the preserve flag the whole phrase is lowercased first.
		{"Create Buffer", false, "createBuffer"},
		{"SHADER MODULE", false, "shaderModule"},

		// With it, word casing survives except the forced capitals.
		{"create sRGB view", true, "createSRGBView"},
		{"XY plane", true, "XYPlane"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := naming.CamelCase(tt.phrase, tt.preserve)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		phrase   string
		preserve bool
		expected string
	}{
		{"device", false, "Device"},
		{"command encoder", false, "CommandEncoder"},
		{"buffer map async status", false, "BufferMapAsyncStatus"},
		{"2d array", false, "2dArray"},
		{"sRGB capable", true, "SRGBCapable"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := naming.PascalCase(tt.phrase, tt.preserve)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// PascalCase(p) must equal CamelCase(p) with its first character uppercased.
func TestPascalMatchesCapitalizedCamel(t *testing.T) {
	phrases := []string{
		"device",
		"buffer map async status",
		"set bind group",
		"render pass encoder",
	}

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			camel, err := naming.CamelCase(phrase, false)
			require.NoError(t, err)

			pascal, err := naming.PascalCase(phrase, false)
			require.NoError(t, err)

			r, size := utf8.DecodeRuneInString(camel)
			assert.Equal(t, string(unicode.ToUpper(r))+camel[size:], pascal)
		})
	}
}

func TestEmptyWordFailsFast(t *testing.T) {
	phrases := []string{
		"",
		" ",
		"double  space",
		" leading",
		"trailing ",
	}

	for _, phrase := range phrases {
		t.Run(fmt.Sprintf("%q", phrase), func(t *testing.T) {
			_, err := naming.CamelCase(phrase, false)
			require.ErrorIs(t, err, naming.ErrEmptyWord)
			assert.True(t, strings.Contains(err.Error(), fmt.Sprintf("%q", phrase)),
				"error should name the offending phrase")

			_, err = naming.PascalCase(phrase, false)
			require.ErrorIs(t, err, naming.ErrEmptyWord)
		})
	}
}
