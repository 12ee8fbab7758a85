package jj

// Arr is a Value known to hold a JSON array.
type Arr struct {
	raw  Array
	path string
	opts *options
}

// Index returns the element at index. Out of range yields an absent Value
// at the extended path without a <nil> marker.
func (a Arr) Index(index int) Value {
	p := indexPath(a.path, index)
	if index < 0 || index >= len(a.raw) {
		return absent(p, a.opts)
	}
	return present(a.raw[index], p, a.opts)
}

// Values returns every element as a Value.
func (a Arr) Values() []Value {
	values := make([]Value, len(a.raw))
	for i := range a.raw {
		values[i] = a.Index(i)
	}
	return values
}

// Len returns the number of elements.
func (a Arr) Len() int { return len(a.raw) }

// Exists is always true for an Arr.
func (a Arr) Exists() bool { return true }

// Path returns the route from the document root to the array.
func (a Arr) Path() string { return a.path }

// Raw returns the underlying slice.
func (a Arr) Raw() Array { return a.raw }

// Value converts the array back into a Value at the same path.
func (a Arr) Value() Value { return present(a.raw, a.path, a.opts) }

func (a Arr) String() string { return a.PrettyPrint("", defaultSpacer) }

// PrettyPrint renders the array like Value.PrettyPrint.
func (a Arr) PrettyPrint(space, spacer string) string {
	return renderArray(a.raw, space, spacer)
}

// MaybeArr is the array counterpart of MaybeObj.
type MaybeArr struct {
	inner *Arr
	path  string
	opts  *options
}

// Index looks up index; on an absent array the path gets a <nil> marker.
func (m MaybeArr) Index(index int) Value {
	if m.inner != nil {
		return m.inner.Index(index)
	}
	return absent(missingIndexPath(m.path, index), m.opts)
}

// Arr returns the underlying array, if any.
func (m MaybeArr) Arr() (Arr, bool) {
	if m.inner == nil {
		return Arr{}, false
	}
	return *m.inner, true
}

// Exists reports whether the viewed value was an array.
func (m MaybeArr) Exists() bool { return m.inner != nil }

func (m MaybeArr) Path() string { return m.path }

// Raw returns the array, or nil when absent.
func (m MaybeArr) Raw() Array {
	if m.inner == nil {
		return nil
	}
	return m.inner.raw
}
