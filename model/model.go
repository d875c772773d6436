// Package model holds the geometry the demo renders and the layout
// that describes it to the renderer.
package model

import (
	"unsafe"

	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex
type Vertex struct {
	Pos   glm.Vec2
	Color glm.Vec3
}

// Attribute names as the vertex shader declares them
const (
	PositionAttribute = "a_Pos"
	ColorAttribute    = "a_Color"
)

// RenderTarget is the fragment shader output bound to the window's back buffer.
const RenderTarget = "Target0"

// Triangle returns the demo mesh. A new array is returned on every call,
// the mesh itself never changes.
func Triangle() [3]Vertex {
	return [3]Vertex{
		{Pos: glm.Vec2{-0.5, -0.5}, Color: glm.Vec3{1.0, 0.0, 0.0}},
		{Pos: glm.Vec2{0.5, -0.5}, Color: glm.Vec3{0.0, 1.0, 0.0}},
		{Pos: glm.Vec2{0.0, 0.5}, Color: glm.Vec3{0.0, 0.0, 1.0}},
	}
}

// ClearColor is the color the render target is cleared to every frame.
func ClearColor() glm.Vec4 {
	return glm.Vec4{0.1, 0.2, 0.3, 1.0}
}

// AttributeDescription describes one vertex attribute within a Vertex.
type AttributeDescription struct {
	Name       string
	Location   uint32
	Components int32
	Offset     uintptr
}

// BindingDescription describes how vertices are laid out in a vertex buffer.
type BindingDescription struct {
	Stride     int32
	Attributes []AttributeDescription
}

// VertexBindingDescription returns the layout of Vertex in a
// tightly packed vertex buffer.
func VertexBindingDescription() BindingDescription {
	return BindingDescription{
		Stride: int32(unsafe.Sizeof(Vertex{})),
		Attributes: []AttributeDescription{
			{
				Name:       PositionAttribute,
				Location:   0,
				Components: int32(len(Vertex{}.Pos)),
				Offset:     unsafe.Offsetof(Vertex{}.Pos),
			},
			{
				Name:       ColorAttribute,
				Location:   1,
				Components: int32(len(Vertex{}.Color)),
				Offset:     unsafe.Offsetof(Vertex{}.Color),
			},
		},
	}
}

// Floats flattens vertices into the raw float32 stream a vertex buffer expects.
func Floats(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*5)
	for _, v := range vertices {
		data = append(data, v.Pos[0], v.Pos[1], v.Color[0], v.Color[1], v.Color[2])
	}
	return data
}
