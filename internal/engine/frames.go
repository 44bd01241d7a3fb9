package engine

// Frames tracks object/array nesting for token sources built on decoders that
// do not distinguish object keys from string values.
type Frames struct {
	stack []frame
}

type frame struct {
	object       bool
	expectingKey bool
}

// Open pushes a container.
func (f *Frames) Open(object bool) {
	f.stack = append(f.stack, frame{object: object, expectingKey: object})
}

// Close pops a container; the closed container counts as a value of its parent.
func (f *Frames) Close() {
	if n := len(f.stack); n > 0 {
		f.stack = f.stack[:n-1]
	}
	f.Value()
}

// Key reports whether the next string is an object key and, if so, consumes
// the key slot.
func (f *Frames) Key() bool {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

// Value records that a value was read in the current container.
func (f *Frames) Value() {
	if n := len(f.stack); n > 0 {
		top := &f.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
