package pmachine

// Method is native code bound to one selector of one object. It receives
// the heap so it can read and write properties directly, and returns the
// value left in the accumulator.
type Method func(h *Heap, self Reg, args ...Reg) Reg

// Props is the initial property set of a new object.
type Props map[Selector]Reg

type object struct {
	name    string
	props   map[Selector]Reg
	methods map[Selector]Method
}

// Heap is an in-memory Store. Each object lives in its own segment, so a
// handle is never mistaken for an integer.
type Heap struct {
	objects map[Reg]*object
	missing map[Selector]bool
	segment uint16
}

func NewHeap() *Heap {
	return &Heap{
		objects: make(map[Reg]*object),
		missing: make(map[Selector]bool),
	}
}

// New allocates an object and returns its handle.
func (h *Heap) New(name string, props Props) Reg {
	h.segment++
	obj := &object{
		name:    name,
		props:   make(map[Selector]Reg, len(props)),
		methods: make(map[Selector]Method),
	}
	for sel, v := range props {
		obj.props[sel] = v
	}
	handle := Make(h.segment, 0)
	h.objects[handle] = obj
	return handle
}

// Bind attaches m to the object's selector, replacing any previous method.
func (h *Heap) Bind(handle Reg, sel Selector, m Method) {
	if obj, ok := h.objects[handle]; ok {
		obj.methods[sel] = m
	}
}

// Dispose frees the object. Its handle stops being an object.
func (h *Heap) Dispose(handle Reg) {
	delete(h.objects, handle)
}

// Forget removes sel from the vocabulary.
func (h *Heap) Forget(sel Selector) {
	h.missing[sel] = true
}

func (h *Heap) Name(handle Reg) string {
	if obj, ok := h.objects[handle]; ok {
		return obj.name
	}
	return ""
}

func (h *Heap) Value(handle Reg, sel Selector) Reg {
	if obj, ok := h.objects[handle]; ok {
		return obj.props[sel]
	}
	return Null
}

func (h *Heap) SetValue(handle Reg, sel Selector, v Reg) {
	if obj, ok := h.objects[handle]; ok {
		obj.props[sel] = v
	}
}

// Invoke runs the bound method. A selector with no method bound behaves
// like a property read.
func (h *Heap) Invoke(handle Reg, sel Selector, args ...Reg) Reg {
	obj, ok := h.objects[handle]
	if !ok {
		return Null
	}
	if m, ok := obj.methods[sel]; ok {
		return m(h, handle, args...)
	}
	return obj.props[sel]
}

func (h *Heap) IsObject(r Reg) bool {
	_, ok := h.objects[r]
	return ok
}

func (h *Heap) HasSelector(sel Selector) bool {
	return sel < selectorCount && !h.missing[sel]
}
