package dock

// Orientation is the primary axis along which a sequential container
// arranges its children.
type Orientation int

const (
	// Horizontal lays children out left to right.
	Horizontal Orientation = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// String returns the serialized form used in dumps ("horizontal" or
// "vertical").
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Size is a width/height pair in layout cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a rectangle in layout cells. X/Y are relative to the
// enclosing surface's origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// primary returns the extent along the given axis.
func (s Size) primary(o Orientation) int {
	if o == Vertical {
		return s.Height
	}
	return s.Width
}

// cross returns the extent across the given axis.
func (s Size) cross(o Orientation) int {
	if o == Vertical {
		return s.Width
	}
	return s.Height
}

// DropArea identifies a drop target zone during a drag operation. The
// drag handling itself lives outside this package; containers only
// answer whether a proposed area is compatible with their orientation.
type DropArea int

const (
	// DropLeft targets the leading edge of a horizontal container.
	DropLeft DropArea = iota
	// DropRight targets the trailing edge of a horizontal container.
	DropRight
	// DropTop targets the leading edge of a vertical container.
	DropTop
	// DropBottom targets the trailing edge of a vertical container.
	DropBottom
	// DropScrollHorizontal targets the scroll body of a horizontal container.
	DropScrollHorizontal
	// DropScrollVertical targets the scroll body of a vertical container.
	DropScrollVertical
)

// compatible reports whether the area makes sense for the orientation.
func (a DropArea) compatible(o Orientation) bool {
	switch a {
	case DropLeft, DropRight, DropScrollHorizontal:
		return o == Horizontal
	case DropTop, DropBottom, DropScrollVertical:
		return o == Vertical
	default:
		return false
	}
}
