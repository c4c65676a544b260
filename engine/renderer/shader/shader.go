package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// shader is the implementation of the Shader interface.
// It holds the GLSL sources, the linked program object, and a uniform location
// cache so repeated pushes of the same name never re-query the driver.
type shader struct {
	key            string
	vertexSource   string
	fragmentSource string

	program   uint32
	locations map[string]int32
}

// Shader defines the interface for a compiled and linked GLSL shader program.
// It exposes the named-uniform setters the scene core pushes state through, plus
// the program lifecycle. Uniform names that do not resolve to an active location
// are ignored by every setter, so callers may push names the current program does
// not declare without failing.
//
// All methods except Key must be called on the thread that owns the GL context.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Compile compiles the vertex and fragment stages, links the program, and
	// warms the uniform location cache from the program's active uniform list.
	// Must be called once, after the GL context exists and before Use.
	//
	// Returns:
	//   - error: error if a stage fails to compile or the program fails to link
	Compile() error

	// Use activates the program for subsequent uniform pushes and draw calls.
	Use()

	// Program retrieves the GL program object name.
	//
	// Returns:
	//   - uint32: the linked program, or 0 before Compile
	Program() uint32

	// SetMat4 pushes a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the column-major matrix value
	SetMat4(name string, value mgl32.Mat4)

	// SetVec2 pushes a vec2 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the vector value
	SetVec2(name string, value mgl32.Vec2)

	// SetVec3 pushes a vec3 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the vector value
	SetVec3(name string, value mgl32.Vec3)

	// SetVec4 pushes a vec4 uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the vector value
	SetVec4(name string, value mgl32.Vec4)

	// SetFloat pushes a float uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the scalar value
	SetFloat(name string, value float32)

	// SetInt pushes an int uniform.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the integer value
	SetInt(name string, value int32)

	// SetBool pushes a boolean uniform as an int (1 for true, 0 for false).
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the boolean value
	SetBool(name string, value bool)

	// SetSampler2D binds a sampler uniform to a texture unit index.
	//
	// Parameters:
	//   - name: the sampler uniform name
	//   - unit: the texture unit index the sampler should read from
	SetSampler2D(name string, unit int32)

	// Destroy deletes the GL program. Safe to call repeatedly.
	Destroy()
}

var _ Shader = &shader{}

// NewShader creates a new Shader instance with all specified options applied.
// Without source options the built-in outdoor scene sources (SceneVertexSource,
// SceneFragmentSource) are used. The shader is not compiled until Compile is
// called on the GL context thread.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - options: a variadic list of ShaderBuilderOption functions to configure the Shader
//
// Returns:
//   - Shader: a new Shader instance with the provided configuration
func NewShader(key string, options ...ShaderBuilderOption) Shader {
	s := &shader{
		key:            key,
		vertexSource:   SceneVertexSource,
		fragmentSource: SceneFragmentSource,
		locations:      make(map[string]int32),
	}

	for _, option := range options {
		option(s)
	}

	if s.vertexSource == "" || s.fragmentSource == "" {
		panic(fmt.Sprintf("shader: %s must have both vertex and fragment sources", key))
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Compile() error {
	vertex, err := compileStage(s.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("shader %s: vertex stage: %w", s.key, err)
	}
	fragment, err := compileStage(s.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertex)
		return fmt.Errorf("shader %s: fragment stage: %w", s.key, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertex)
	gl.DeleteShader(vertex)
	gl.DetachShader(program, fragment)
	gl.DeleteShader(fragment)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return fmt.Errorf("shader %s: failed to link program: %s", s.key, infoLog)
	}

	s.program = program
	s.locations = activeUniformLocations(program)
	return nil
}

func (s *shader) Use() {
	gl.UseProgram(s.program)
}

func (s *shader) Program() uint32 {
	return s.program
}

func (s *shader) SetMat4(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *shader) SetVec2(name string, value mgl32.Vec2) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform2f(loc, value.X(), value.Y())
	}
}

func (s *shader) SetVec3(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (s *shader) SetVec4(name string, value mgl32.Vec4) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (s *shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (s *shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (s *shader) SetBool(name string, value bool) {
	var asInt int32
	if value {
		asInt = 1
	}
	s.SetInt(name, asInt)
}

func (s *shader) SetSampler2D(name string, unit int32) {
	s.SetInt(name, unit)
}

func (s *shader) Destroy() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

// location returns the cached uniform location, querying the driver on first
// use of a name. Unresolved names cache -1 so repeated misses stay cheap.
func (s *shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// compileStage compiles a single GLSL stage and returns the shader object.
func compileStage(source string, stage uint32) (uint32, error) {
	handle := gl.CreateShader(stage)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, cSources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// programInfoLog extracts the link log from a program object.
func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
