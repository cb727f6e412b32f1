// Package figures holds the small labeled records the toolkit round-trips
// through JSON: plain structs whose behavior comes from their method sets.
package figures

// Rectangle is a width/height record with a derived area.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a rectangle with the given sides.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area returns width * height.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}
