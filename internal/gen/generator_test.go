package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"binding-generator/internal/gen"
	"binding-generator/internal/model"
	"binding-generator/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDescription = `
char:
  category: native
uint64_t:
  category: native

compare function:
  category: enum
  values:
    - { name: undefined, value: 0 }
    - { name: never, value: 1 }

buffer usage:
  category: bitmask
  values:
    - { name: none, value: 0 }
    - { name: map read, value: 1 }
    - { name: map write, value: 2 }

buffer descriptor:
  category: structure
  members:
    - { name: label, type: char, annotation: const*, length: strlen, optional: true }
    - { name: usage, type: buffer usage }
    - { name: size, type: uint64_t, default: 0 }

buffer:
  category: object
  methods:
    - { name: unmap }
`

func generate(t *testing.T) map[string]string {
	t.Helper()

	desc, err := schema.Parse([]byte(testDescription))
	require.NoError(t, err)

	m, err := model.New(desc, nil)
	require.NoError(t, err)

	files, err := gen.New(gen.DefaultConfig()).Generate(m)
	require.NoError(t, err)

	byName := make(map[string]string, len(files))
	for _, f := range files {
		byName[f.Filename] = string(f.Content)
	}

	return byName
}

func TestGenerateEnums(t *testing.T) {
	files := generate(t)

	assert.Equal(t, `// Generated by binding-generator. DO NOT EDIT.

import CWebGPU

public enum CompareFunction: UInt32 {
    case undefined = 0
    case never = 1
}
`, files["Enums.swift"])
}

func TestGenerateOptionSets(t *testing.T) {
	files := generate(t)

	assert.Equal(t, `// Generated by binding-generator. DO NOT EDIT.

import CWebGPU

public struct BufferUsage: OptionSet {
    public let rawValue: UInt32

    public init(rawValue: UInt32) {
        self.rawValue = rawValue
    }

    public static let mapRead = BufferUsage(rawValue: 1)
    public static let mapWrite = BufferUsage(rawValue: 2)
}
`, files["OptionSets.swift"])
}

func TestGenerateStructs(t *testing.T) {
	files := generate(t)

	assert.Equal(t, `// Generated by binding-generator. DO NOT EDIT.

import CWebGPU

public struct BufferDescriptor {
    public var label: String? = nil
    public var usage: BufferUsage
    public var size: UInt64
}
`, files["Structs.swift"])
}

func TestGenerateClasses(t *testing.T) {
	files := generate(t)

	assert.Equal(t, `// Generated by binding-generator. DO NOT EDIT.

import CWebGPU

public final class Buffer {
    let handle: WGPUBuffer!

    init(handle: WGPUBuffer!) {
        wgpuBufferReference(handle)
        self.handle = handle
    }

    deinit {
        wgpuBufferRelease(handle)
    }
}
`, files["Classes.swift"])
}

func TestGenerateSkipsEmptyKinds(t *testing.T) {
	desc, err := schema.Parse([]byte(`
compare function:
  category: enum
  values:
    - { name: never, value: 1 }
`))
	require.NoError(t, err)

	m, err := model.New(desc, nil)
	require.NoError(t, err)

	files, err := gen.New(gen.DefaultConfig()).Generate(m)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "Enums.swift", files[0].Filename)
}

func TestGenerateDeterministic(t *testing.T) {
	first := generate(t)
	second := generate(t)

	assert.Equal(t, first, second)
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Generated")

	files := []gen.GeneratedFile{
		{Filename: "Enums.swift", Content: []byte("public enum E: UInt32 {\n}\n")},
		{Filename: "Structs.swift", Content: []byte("public struct S {\n}\n")},
	}

	require.NoError(t, gen.WriteFiles(files, dir))

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.Filename))
		require.NoError(t, err)
		assert.Equal(t, f.Content, data)
	}
}
