// Package ring holds the index arithmetic for a circular window over a fixed size buffer.
// Everything that wraps an index around the end of a buffer goes through Window.
package ring

// Window - Describes the live part of a circular buffer: Len slots starting at Head, wrapping at Cap.
type Window struct {
	Head int
	Len  int
	Cap  int
}

// Index - Returns the buffer index of the i:th logical element (0 is the front)
func (W Window) Index(i int) int {
	return W.wrap(W.Head + i)
}

// Tail - Returns the buffer index of the first free slot after the window
func (W Window) Tail() int {
	return W.Index(W.Len)
}

// Full - Returns true if the window covers the whole buffer
func (W Window) Full() bool {
	return W.Len == W.Cap
}

// Empty - Returns true if the window holds nothing
func (W Window) Empty() bool {
	return W.Len == 0
}

// PushBack - Extends the window by one slot at its back and returns the index of that slot.
// Callers must check Full first.
func (W *Window) PushBack() int {
	i := W.Tail()
	W.Len++
	return i
}

// PopFront - Shrinks the window by one slot at its front and returns the index of the slot that left.
// Callers must check Empty first.
func (W *Window) PopFront() int {
	i := W.Head
	W.Head = W.wrap(W.Head + 1)
	W.Len--
	return i
}

// Unwrap - Copies the window out of src into dst starting at dst[0], in logical order, and returns the
// window describing the copy. len(dst) must be at least W.Len.
func Unwrap[T any](W Window, src, dst []T) Window {
	if W.Head+W.Len <= W.Cap {
		copy(dst, src[W.Head:W.Head+W.Len])
	} else {
		n := copy(dst, src[W.Head:W.Cap])
		copy(dst[n:], src[:W.Len-n])
	}

	return Window{Head: 0, Len: W.Len, Cap: len(dst)}
}

func (W Window) wrap(i int) int {
	if i >= W.Cap {
		i -= W.Cap
	}
	return i
}
