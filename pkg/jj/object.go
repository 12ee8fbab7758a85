package jj

// Obj is a Value known to hold a JSON object.
type Obj struct {
	raw  Object
	path string
	opts *options
}

// At returns the value stored under key. A missing key yields an absent
// Value; the path is extended either way.
func (o Obj) At(key string) Value {
	p := keyPath(o.path, key)
	o.warnDeprecated(key, p)
	v, ok := o.raw[key]
	if !ok {
		return absent(p, o.opts)
	}
	return present(v, p, o.opts)
}

// deprecationSuffixes mark a sibling "$<key><suffix>" entry explaining that
// key is deprecated. The historical misspelling is checked first.
var deprecationSuffixes = []string{"__depricated", "__deprecated"}

// warnDeprecated reports use of a key the document marks as deprecated.
func (o Obj) warnDeprecated(key, p string) {
	if o.opts == nil || o.opts.logger == nil {
		return
	}
	var msg any
	found := false
	for _, suffix := range deprecationSuffixes {
		if msg, found = o.raw["$"+key+suffix]; found {
			break
		}
	}
	if !found {
		return
	}
	o.opts.logger.Warn("using deprecated field",
		"path", p,
		"message", render(msg, true, "", defaultSpacer),
	)
}

// Keys returns the object's keys in sorted order.
func (o Obj) Keys() []string {
	return sortedKeys(o.raw)
}

// Len returns the number of keys.
func (o Obj) Len() int { return len(o.raw) }

// Exists is always true for an Obj.
func (o Obj) Exists() bool { return true }

// Path returns the route from the document root to the object.
func (o Obj) Path() string { return o.path }

// Raw returns the underlying map.
func (o Obj) Raw() Object { return o.raw }

// Value converts the object back into a Value at the same path.
func (o Obj) Value() Value { return present(o.raw, o.path, o.opts) }

func (o Obj) String() string { return o.PrettyPrint("", defaultSpacer) }

// PrettyPrint renders the object like Value.PrettyPrint.
func (o Obj) PrettyPrint(space, spacer string) string {
	return renderObject(o.raw, space, spacer)
}

// MaybeObj is the result of viewing a Value as an object when it may not be
// one. Lookups on an absent object keep producing absent values and mark
// the miss in their path.
type MaybeObj struct {
	inner *Obj
	path  string
	opts  *options
}

// At looks up key; on an absent object the path gets a <nil> marker.
func (m MaybeObj) At(key string) Value {
	if m.inner != nil {
		return m.inner.At(key)
	}
	return absent(missingKeyPath(m.path, key), m.opts)
}

// Obj returns the underlying object, if any.
func (m MaybeObj) Obj() (Obj, bool) {
	if m.inner == nil {
		return Obj{}, false
	}
	return *m.inner, true
}

// Exists reports whether the viewed value was an object.
func (m MaybeObj) Exists() bool { return m.inner != nil }

func (m MaybeObj) Path() string { return m.path }

// Raw returns the object, or nil when absent.
func (m MaybeObj) Raw() Object {
	if m.inner == nil {
		return nil
	}
	return m.inner.raw
}
