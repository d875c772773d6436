package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/devblok/triangle/model"
)

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
)

func (t ShaderType) String() string {
	if t == VertexShaderType {
		return "vertex"
	}
	return "fragment"
}

func (t ShaderType) glType() uint32 {
	if t == VertexShaderType {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// Pipeline is a linked shader program together with the vertex
// array that feeds it and the render target it writes to.
type Pipeline struct {
	program     uint32
	vertexArray uint32
	layout      model.BindingDescription
}

// Release deletes the program and the vertex array.
func (p *Pipeline) Release() {
	gl.DeleteVertexArrays(1, &p.vertexArray)
	gl.DeleteProgram(p.program)
}

func compileShader(shaderType ShaderType, source []byte) (uint32, error) {
	shader := gl.CreateShader(shaderType.glType())
	csrc, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("gl.CompileShader(%s): %s", shaderType, trimLog(msg))
	}
	return shader, nil
}

// newPipeline compiles and links the shader pair with attribute locations
// taken from layout and the fragment output bound to target.
func newPipeline(vertexSource, fragmentSource []byte, layout model.BindingDescription, target string) (*Pipeline, error) {
	vshd, err := compileShader(VertexShaderType, vertexSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vshd)

	fshd, err := compileShader(FragmentShaderType, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fshd)

	program := gl.CreateProgram()
	gl.AttachShader(program, vshd)
	gl.AttachShader(program, fshd)
	for _, attr := range layout.Attributes {
		gl.BindAttribLocation(program, attr.Location, gl.Str(attr.Name+"\x00"))
	}
	gl.BindFragDataLocation(program, 0, gl.Str(target+"\x00"))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("gl.LinkProgram(): %s", trimLog(msg))
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)

	return &Pipeline{
		program:     program,
		vertexArray: vao,
		layout:      layout,
	}, nil
}

func trimLog(msg string) string {
	return strings.TrimSpace(strings.TrimRight(msg, "\x00"))
}
