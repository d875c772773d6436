package renderer

import (
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/devblok/triangle/model"
)

// Slice is the range of vertices a draw call consumes.
type Slice struct {
	Start uint32
	End   uint32
}

// Count returns the number of vertices in the slice.
func (s Slice) Count() int32 {
	if s.End <= s.Start {
		return 0
	}
	return int32(s.End - s.Start)
}

// VertexBuffer is GPU memory holding vertex data.
type VertexBuffer struct {
	buffer uint32
}

// Release deletes the buffer.
func (b *VertexBuffer) Release() {
	gl.DeleteBuffers(1, &b.buffer)
}

type vertexAttrib struct {
	location   uint32
	components int32
	stride     int32
	offset     int
}

func vertexAttribs(layout model.BindingDescription) []vertexAttrib {
	attribs := make([]vertexAttrib, 0, len(layout.Attributes))
	for _, attr := range layout.Attributes {
		attribs = append(attribs, vertexAttrib{
			location:   attr.Location,
			components: attr.Components,
			stride:     layout.Stride,
			offset:     int(attr.Offset),
		})
	}
	return attribs
}

// newVertexBuffer uploads vertices once and wires them into the vertex
// array of the pipeline, returning the slice that covers all of them.
func newVertexBuffer(pipeline *Pipeline, vertices []model.Vertex) (*VertexBuffer, Slice) {
	data := model.Floats(vertices)

	var vbo uint32
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(pipeline.vertexArray)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	for _, attr := range vertexAttribs(pipeline.layout) {
		gl.VertexAttribPointer(attr.location, attr.components, gl.FLOAT, false, attr.stride, gl.PtrOffset(attr.offset))
		gl.EnableVertexAttribArray(attr.location)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return &VertexBuffer{buffer: vbo}, Slice{Start: 0, End: uint32(len(vertices))}
}
