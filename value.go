package tapec

// Type identifies the shape of a Value. Two types are equal iff their
// variants match and their element types recursively match; list sizes do
// not enter type identity.
type Type interface {
	// equalType reports whether o is the same type.
	equalType(o Type) bool
	// String names the type, used in intrinsic keys and error messages.
	String() string
	// newValue constructs a fresh Value of this type.
	newValue(c *Compiler) Value
}

// Value is a tagged Value instance: a concrete Byte/List cell owner, or a
// compile-time-only VirtualInteger/VirtualList.
type Value interface {
	Type() Type
	// copyValue produces a new Value equal to the original.
	copyValue(c *Compiler) Value
	// freeValue releases any owned cells. No-op for virtual values.
	freeValue(c *Compiler)
}

// ---- Byte ----

type ByteType struct{}

func (ByteType) equalType(o Type) bool { _, ok := o.(ByteType); return ok }
func (ByteType) String() string        { return "byte" }
func (t ByteType) newValue(c *Compiler) Value {
	return &ByteValue{cell: c.alloc.allocate()}
}

// ByteValue owns exactly one tape cell; its runtime value is the byte
// stored there.
type ByteValue struct {
	cell Cell
}

func (v *ByteValue) Type() Type { return ByteType{} }

// copyValue performs the canonical "copy via temporary": drain self into
// two fresh cells, restore self from one, return the other as a new
// owned Byte.
func (v *ByteValue) copyValue(c *Compiler) Value {
	a1 := c.alloc.allocate()
	a2 := c.alloc.allocate()
	// a1/a2 may be reused gaps with stale content; zero them before
	// relying on their starting value being 0.
	c.em.zero(a1)
	c.em.zero(a2)
	c.em.moveCell(v.cell, 1, a1, a2)
	c.em.moveCell(a2, 1, v.cell)
	c.alloc.free(a2)
	return &ByteValue{cell: a1}
}

func (v *ByteValue) freeValue(c *Compiler) {
	c.alloc.free(v.cell)
}

// ---- List of T ----

type ListType struct {
	Elem Type
	Size int
}

func (t ListType) equalType(o Type) bool {
	ot, ok := o.(ListType)
	return ok && t.Elem.equalType(ot.Elem)
}

func (t ListType) String() string {
	return t.Elem.String() + "[]"
}

func (t ListType) newValue(c *Compiler) Value {
	values := make([]Value, t.Size)
	for i := range values {
		values[i] = t.Elem.newValue(c)
	}
	return &ListValue{typ: t, Values: values}
}

// ListValue owns a fixed-size vector of element Values.
type ListValue struct {
	typ    ListType
	Values []Value
}

func (v *ListValue) Type() Type { return v.typ }

func (v *ListValue) copyValue(c *Compiler) Value {
	values := make([]Value, len(v.Values))
	for i, e := range v.Values {
		values[i] = e.copyValue(c)
	}
	return &ListValue{typ: v.typ, Values: values}
}

func (v *ListValue) freeValue(c *Compiler) {
	for _, e := range v.Values {
		e.freeValue(c)
	}
}

// ---- VirtualInteger ----

type VirtualIntegerType struct{}

func (VirtualIntegerType) equalType(o Type) bool { _, ok := o.(VirtualIntegerType); return ok }
func (VirtualIntegerType) String() string        { return "virtual integer" }
func (VirtualIntegerType) newValue(c *Compiler) Value {
	return &VirtualIntegerValue{Value: 0}
}

// VirtualIntegerValue is a compile-time-only non-negative integer with no
// tape footprint.
type VirtualIntegerValue struct {
	Value int
}

func (v *VirtualIntegerValue) Type() Type                 { return VirtualIntegerType{} }
func (v *VirtualIntegerValue) copyValue(c *Compiler) Value { return &VirtualIntegerValue{Value: v.Value} }
func (v *VirtualIntegerValue) freeValue(c *Compiler)       {}

// ---- VirtualList ----

type VirtualListType struct{}

func (VirtualListType) equalType(o Type) bool { _, ok := o.(VirtualListType); return ok }
func (VirtualListType) String() string        { return "virtual list" }
func (VirtualListType) newValue(c *Compiler) Value {
	return &VirtualListValue{}
}

// VirtualListValue is a compile-time-only sequence of Values.
type VirtualListValue struct {
	Elements []Value
}

func (v *VirtualListValue) Type() Type { return VirtualListType{} }

func (v *VirtualListValue) copyValue(c *Compiler) Value {
	elems := make([]Value, len(v.Elements))
	copy(elems, v.Elements)
	return &VirtualListValue{Elements: elems}
}

func (v *VirtualListValue) freeValue(c *Compiler) {}
