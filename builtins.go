package tapec

import "strings"

// registerBuiltins wires every built-in intrinsic, plus the additive `!=`
// and explicit `copy` call form, into the compiler's shared intrinsic
// table.
func registerBuiltins(t *intrinsicTable) {
	byteT := ByteType{}
	vintT := VirtualIntegerType{}

	// = (byte, byte): zero dst, then move src into it. src is consumed.
	t.register("=", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		c.em.zero(x.cell)
		c.em.moveCell(y.cell, 1, x.cell)
		c.alloc.free(y.cell)
		return nil, nil
	})

	// = (byte, vint): zero dst, increment by the literal value.
	t.register("=", []Type{byteT, vintT}, func(c *Compiler, args []Value) (Value, error) {
		x, v := args[0].(*ByteValue), args[1].(*VirtualIntegerValue)
		c.em.zero(x.cell)
		c.em.goTo(x.cell)
		c.em.emit(strings.Repeat("+", v.Value))
		return nil, nil
	})

	// ++ (byte)
	t.register("++", []Type{byteT}, func(c *Compiler, args []Value) (Value, error) {
		x := args[0].(*ByteValue)
		c.em.goTo(x.cell)
		c.em.emit("+")
		return x, nil
	})

	// -- (byte)
	t.register("--", []Type{byteT}, func(c *Compiler, args []Value) (Value, error) {
		x := args[0].(*ByteValue)
		c.em.goTo(x.cell)
		c.em.emit("-")
		return x, nil
	})

	// += (byte, byte): move y into x, consuming y.
	t.register("+=", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		c.em.moveCell(y.cell, 1, x.cell)
		c.alloc.free(y.cell)
		return x, nil
	})

	// += (byte, vint)
	t.register("+=", []Type{byteT, vintT}, func(c *Compiler, args []Value) (Value, error) {
		x, v := args[0].(*ByteValue), args[1].(*VirtualIntegerValue)
		c.em.goTo(x.cell)
		c.em.emit(strings.Repeat("+", v.Value))
		return x, nil
	})

	// -= (byte, byte): loop at y decrementing y once and x once per
	// iteration, draining y while subtracting its value from x.
	t.register("-=", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		c.em.goTo(y.cell)
		c.em.loop(func() error {
			c.em.emit("-")
			c.em.goTo(x.cell)
			c.em.emit("-")
			c.em.goTo(y.cell)
			return nil
		})
		c.alloc.free(y.cell)
		return x, nil
	})

	// -= (byte, vint)
	t.register("-=", []Type{byteT, vintT}, func(c *Compiler, args []Value) (Value, error) {
		x, v := args[0].(*ByteValue), args[1].(*VirtualIntegerValue)
		c.em.goTo(x.cell)
		c.em.emit(strings.Repeat("-", v.Value))
		return x, nil
	})

	// *= (byte, byte): copy x aside as x', zero x, then for each of y's
	// units add a fresh copy x'' of x' into x; free y and each x''.
	t.register("*=", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		xPrime := x.copyValue(c).(*ByteValue)
		c.em.zero(x.cell)
		c.em.goTo(y.cell)
		c.em.loop(func() error {
			c.em.emit("-")
			xPrimePrime := xPrime.copyValue(c).(*ByteValue)
			c.em.moveCell(xPrimePrime.cell, 1, x.cell)
			c.alloc.free(xPrimePrime.cell)
			c.em.goTo(y.cell)
			return nil
		})
		// x' (xPrime) is never freed here, only y is.
		c.alloc.free(y.cell)
		return x, nil
	})

	// *= (byte, vint): move x into a temporary multiplier-many times per
	// unit, then move the temporary back into x.
	t.register("*=", []Type{byteT, vintT}, func(c *Compiler, args []Value) (Value, error) {
		x, v := args[0].(*ByteValue), args[1].(*VirtualIntegerValue)
		tmp := c.alloc.allocate()
		c.em.zero(tmp)
		c.em.moveCell(x.cell, v.Value, tmp)
		c.em.moveCell(tmp, 1, x.cell)
		c.alloc.free(tmp)
		return x, nil
	})

	// ! (byte): logical negation. y starts at 1; if x is non-zero, drain
	// x to zero and decrement y to 0.
	t.register("!", []Type{byteT}, func(c *Compiler, args []Value) (Value, error) {
		x := args[0].(*ByteValue)
		y := c.alloc.allocate()
		c.em.zero(y)
		c.em.goTo(y)
		c.em.emit("+")
		c.em.goTo(x.cell)
		c.em.loop(func() error {
			c.em.emit("[-]")
			c.em.goTo(y)
			c.em.emit("-")
			c.em.goTo(x.cell)
			return nil
		})
		return &ByteValue{cell: y}, nil
	})

	// == (byte, byte): destructively subtract y from x, then test x for
	// zero into a fresh byte z.
	t.register("==", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		c.em.goTo(y.cell)
		c.em.loop(func() error {
			c.em.emit("-")
			c.em.goTo(x.cell)
			c.em.emit("-")
			c.em.goTo(y.cell)
			return nil
		})
		z := c.alloc.allocate()
		c.em.zero(z)
		c.em.goTo(z)
		c.em.emit("+")
		c.em.goTo(x.cell)
		c.em.loop(func() error {
			c.em.emit("[-]")
			c.em.goTo(z)
			c.em.emit("-")
			c.em.goTo(x.cell)
			return nil
		})
		c.alloc.free(x.cell)
		c.alloc.free(y.cell)
		return &ByteValue{cell: z}, nil
	})

	// != (byte, byte): computed directly rather than composing == and !
	// so it needs only one extra cell instead of two: subtract y from x,
	// then test x for *non*-zero into z (z starts at 0, and is set to 1
	// the moment x's drain loop runs at all).
	t.register("!=", []Type{byteT, byteT}, func(c *Compiler, args []Value) (Value, error) {
		x, y := args[0].(*ByteValue), args[1].(*ByteValue)
		c.em.goTo(y.cell)
		c.em.loop(func() error {
			c.em.emit("-")
			c.em.goTo(x.cell)
			c.em.emit("-")
			c.em.goTo(y.cell)
			return nil
		})
		z := c.alloc.allocate()
		c.em.zero(z)
		c.em.goTo(x.cell)
		c.em.loop(func() error {
			c.em.emit("[-]")
			c.em.goTo(z)
			c.em.emit("+")
			c.em.goTo(x.cell)
			return nil
		})
		c.alloc.free(x.cell)
		c.alloc.free(y.cell)
		return &ByteValue{cell: z}, nil
	})

	// read ()
	t.register("read", nil, func(c *Compiler, args []Value) (Value, error) {
		cell := c.alloc.allocate()
		c.em.goTo(cell)
		c.em.emit(",")
		return &ByteValue{cell: cell}, nil
	})

	// write (byte)
	t.register("write", []Type{byteT}, func(c *Compiler, args []Value) (Value, error) {
		x := args[0].(*ByteValue)
		c.em.goTo(x.cell)
		c.em.emit(".")
		return nil, nil
	})

	// copy (byte): the intrinsic-table form of CopyNode, with identical
	// semantics. The parser turns every one-argument `copy(...)` into a
	// CopyNode, so this entry is reached only by a CallNode named "copy".
	t.register("copy", []Type{byteT}, func(c *Compiler, args []Value) (Value, error) {
		x := args[0].(*ByteValue)
		return x.copyValue(c), nil
	})
}
