// Package geom provides simple plane geometry values.
package geom

// Rect is a rectangle with float64 sides. Fields are JSON-tagged so a Rect
// survives a jsonio round trip with its methods intact.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle with the given sides. Values are taken as is,
// negative sides are not rejected.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns width * height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
