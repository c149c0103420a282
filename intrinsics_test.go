package tapec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntrinsicTable_RegisterAndLookup(t *testing.T) {
	tbl := newIntrinsicTable()
	called := false
	tbl.register("foo", []Type{ByteType{}}, func(c *Compiler, args []Value) (Value, error) {
		called = true
		return nil, nil
	})

	fn, err := tbl.lookup("foo", []Value{&ByteValue{cell: 0}})
	assert.NoError(t, err)
	_, _ = fn(nil, nil)
	assert.True(t, called)
}

func TestIntrinsicTable_LookupUnknownFaults(t *testing.T) {
	tbl := newIntrinsicTable()
	_, err := tbl.lookup("nope", nil)
	assert.Error(t, err)
	var ce CompileError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, UnknownIntrinsic, ce.Kind)
}

func TestIntrinsicTable_LookupDistinguishesByTypeTuple(t *testing.T) {
	tbl := newIntrinsicTable()
	tbl.register("=", []Type{ByteType{}, ByteType{}}, func(c *Compiler, args []Value) (Value, error) {
		return nil, nil
	})

	_, err := tbl.lookup("=", []Value{&ByteValue{cell: 0}, &VirtualIntegerValue{Value: 1}})
	assert.Error(t, err, "a (byte, vint) call must not match a (byte, byte) registration")
}

func TestFormatTypeTuple(t *testing.T) {
	assert.Equal(t, "()", formatTypeTuple(nil))
	assert.Equal(t, "(byte)", formatTypeTuple([]Type{ByteType{}}))
	assert.Equal(t, "(byte, virtual integer)", formatTypeTuple([]Type{ByteType{}, VirtualIntegerType{}}))
}
