package interfaces

// Viewport is the scroll surface a navigable view exposes to the scroll
// controller. Extents are measured along a single axis; the host decides
// whether that axis is horizontal or vertical.
type Viewport interface {
	// Position reports the current scroll offset. Some hosts report negative
	// offsets for right-to-left layouts; callers use the magnitude.
	Position() float64
	// ScrollExtent reports the maximum scrollable offset (content minus viewport).
	ScrollExtent() float64
	// ViewportExtent reports the visible size along the scroll axis.
	ViewportExtent() float64
	// ScrollTo moves the viewport to the provided offset.
	ScrollTo(position float64)
	// Subscribe registers fn for scroll-position change events and returns the
	// function that releases the subscription.
	Subscribe(fn func()) (unsubscribe func())
}
