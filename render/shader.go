package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Background and cursor pass: per-vertex position and color straight in
// clip space, no projection.
const gridVertexShader = `
	#version 410 core
	layout (location = 0) in vec2 aPos;
	layout (location = 1) in vec3 aColor;
	out vec3 vColor;
	void main() {
		vColor = aColor;
		gl_Position = vec4(aPos, 0.0, 1.0);
	}
` + "\x00"

const gridFragmentShader = `
	#version 410 core
	in vec3 vColor;
	out vec4 FragColor;
	void main() {
		FragColor = vec4(vColor, 1.0);
	}
` + "\x00"

// Text pass: textured quads sampling the font atlas. The atlas is a
// single-channel texture; its red channel becomes the glyph alpha.
const textVertexShader = `
	#version 410 core
	layout (location = 0) in vec4 vertex; // <vec2 pos, vec2 uv>
	out vec2 TexCoords;
	void main() {
		gl_Position = vec4(vertex.xy, 0.0, 1.0);
		TexCoords = vertex.zw;
	}
` + "\x00"

const textFragmentShader = `
	#version 410 core
	in vec2 TexCoords;
	out vec4 FragColor;
	uniform sampler2D glyphs;
	uniform vec3 textColor;
	void main() {
		float alpha = texture(glyphs, TexCoords).r;
		FragColor = vec4(textColor, alpha);
	}
` + "\x00"

// createProgram creates a shader program from vertex and fragment shader sources
func createProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a shader from source
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}

	return shader, nil
}
