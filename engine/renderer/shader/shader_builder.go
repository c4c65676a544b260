package shader

import (
	"fmt"
	"os"
)

// ShaderBuilderOption is a functional option for configuring a Shader via NewShader.
type ShaderBuilderOption func(*shader)

// WithVertexSource is an option builder that sets the vertex stage GLSL source.
//
// Parameters:
//   - source: the GLSL vertex shader source
//
// Returns:
//   - ShaderBuilderOption: a function that applies the source to a shader
func WithVertexSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexSource = source
	}
}

// WithFragmentSource is an option builder that sets the fragment stage GLSL source.
//
// Parameters:
//   - source: the GLSL fragment shader source
//
// Returns:
//   - ShaderBuilderOption: a function that applies the source to a shader
func WithFragmentSource(source string) ShaderBuilderOption {
	return func(s *shader) {
		s.fragmentSource = source
	}
}

// WithVertexSourceFromPath is an option builder that reads the vertex stage GLSL
// source from a file. Panics if the file cannot be read, since a shader without a
// valid source can never compile.
//
// Parameters:
//   - path: the file path to read GLSL source from
//
// Returns:
//   - ShaderBuilderOption: a function that applies the source to a shader
func WithVertexSourceFromPath(path string) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexSource = mustReadSource(path)
	}
}

// WithFragmentSourceFromPath is an option builder that reads the fragment stage
// GLSL source from a file. Panics if the file cannot be read, since a shader
// without a valid source can never compile.
//
// Parameters:
//   - path: the file path to read GLSL source from
//
// Returns:
//   - ShaderBuilderOption: a function that applies the source to a shader
func WithFragmentSourceFromPath(path string) ShaderBuilderOption {
	return func(s *shader) {
		s.fragmentSource = mustReadSource(path)
	}
}

func mustReadSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("shader: failed to read source %s: %v", path, err))
	}
	return string(data)
}
