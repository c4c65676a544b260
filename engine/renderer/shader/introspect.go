package shader

import (
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// activeUniformLocations enumerates a linked program's active uniforms and
// resolves each one's location up front, so the first frame pays no per-name
// GetUniformLocation round trips. Array uniforms are reported by the driver as
// their "[0]" element; every declared element is expanded into the map so
// per-index names like lightSources[2].position resolve from the cache too.
//
// Parameters:
//   - program: the linked GL program to introspect
//
// Returns:
//   - map[string]int32: uniform locations keyed by name
func activeUniformLocations(program uint32) map[string]int32 {
	locations := make(map[string]int32)

	var count int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)

	var bufSize int32
	gl.GetProgramiv(program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &bufSize)
	if bufSize < 1 {
		bufSize = 1
	}
	buf := make([]uint8, bufSize)

	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(program, uint32(i), bufSize, &length, &size, &xtype, &buf[0])
		name := string(buf[:length])

		locations[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))

		// Expand "name[0]" into one entry per declared array element.
		base, isArray := strings.CutSuffix(name, "[0]")
		if !isArray {
			continue
		}
		for element := int32(1); element < size; element++ {
			elementName := base + "[" + strconv.Itoa(int(element)) + "]"
			locations[elementName] = gl.GetUniformLocation(program, gl.Str(elementName+"\x00"))
		}
	}
	return locations
}
