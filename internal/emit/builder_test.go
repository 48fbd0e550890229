package emit_test

import (
	"fmt"
	"strings"
	"testing"

	"binding-generator/internal/emit"

	"github.com/stretchr/testify/assert"
)

func ExampleBuilder() {
	var b emit.Builder
	b.Add("import WebGPU")
	b.Add("")
	b.Add("let device = adapter.requestDevice()")
	fmt.Println(b.Build())

	// Output:
	// import WebGPU
	//
	// let device = adapter.requestDevice()
}

func TestBuilderSequence(t *testing.T) {
	var b emit.Builder
	got := b.Add("a").Add("b").Add("c").Build()

	assert.Equal(t, "a\nb\nc", got)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline")
}

func TestBuilderMultiLineFragments(t *testing.T) {
	var b emit.Builder
	b.Add("case a\ncase b")
	b.Add("case c")

	assert.Equal(t, "case a\ncase b\ncase c", b.Build())
}

func TestBuilderAddIf(t *testing.T) {
	tests := []struct {
		name     string
		cond     bool
		expected string
	}{
		{"true keeps fragment", true, "first\nmaybe\nlast"},
		{"false contributes nothing", false, "first\nlast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b emit.Builder
			b.Add("first").AddIf(tt.cond, "maybe").Add("last")

			assert.Equal(t, tt.expected, b.Build())
		})
	}
}

func TestBuilderAddEither(t *testing.T) {
	var b emit.Builder
	b.AddEither(false, "then\nbranch", "else")
	got := b.Build()

	assert.Equal(t, "else", got)
	assert.Len(t, strings.Split(got, "\n"), 1,
		"unselected branch must not contribute any line")
}

func TestBuilderAddEachEmpty(t *testing.T) {
	var b emit.Builder
	b.Add("before").AddEach(nil).Add("after")

	assert.Equal(t, "before\nafter", b.Build(),
		"empty collection must not introduce a stray separator")
}

func TestBuilderAddEachOrder(t *testing.T) {
	var b emit.Builder
	b.AddEach([]string{"one", "two", "three"})

	assert.Equal(t, "one\ntwo\nthree", b.Build())
}

func TestBuilderDeterministic(t *testing.T) {
	compose := func() string {
		var b emit.Builder
		b.Add("head").AddEach([]string{"x", "y"}).AddIf(true, "tail")
		return b.Build()
	}

	assert.Equal(t, compose(), compose())
}

func TestEach(t *testing.T) {
	got := emit.Each([]int{1, 2, 3}, func(n int) string {
		return fmt.Sprintf("case v%d", n)
	})

	assert.Equal(t, []string{"case v1", "case v2", "case v3"}, got)
	assert.Nil(t, emit.Each([]int(nil), func(int) string { return "" }))
}
