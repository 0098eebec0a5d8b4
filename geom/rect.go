// Package geom holds the small geometry values the tool round-trips
// through JSON.
package geom

// Rect is a width/height pair.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect returns a rectangle with the given sides.
func NewRect(width, height float64) *Rect {
	return &Rect{Width: width, Height: height}
}

// Area returns width times height.
func (r *Rect) Area() float64 {
	return r.Width * r.Height
}
