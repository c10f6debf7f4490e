package storage

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Value is one decoded record column.
type Value struct {
	Type SerialType

	// Int holds integer values, sign extended from their stored width.
	Int int64

	// Float holds the value of SerialFloat64 columns.
	Float float64

	// Bytes is the raw payload of the column: the big-endian integer,
	// the text or the blob.
	Bytes []byte
}

// IsNull reports whether the column is NULL.
func (v Value) IsNull() bool {
	return v.Type == SerialNull
}

// Text returns the column bytes as a string. Non text columns return their raw bytes.
func (v Value) Text() string {
	return string(v.Bytes)
}

// Uint interprets an integer column as an unsigned big-endian number built
// from its stored bytes.
func (v Value) Uint() uint64 {
	switch v.Type {
	case SerialZero:
		return 0
	case SerialOne:
		return 1
	}

	var n uint64
	for _, b := range v.Bytes {
		n = n<<8 | uint64(b)
	}
	return n
}

// Record is an ordered list of column values.
type Record struct {
	Values []Value
}

// ReadRecord decodes a record at the reader's position: a varint header
// length, the serial type of every column, then the packed column values.
func ReadRecord(r *Reader) (Record, error) {
	start := r.Position()

	headerLen, err := r.ReadVarint()
	if err != nil {
		return Record{}, fmt.Errorf("record header length: %w", err)
	}
	if headerLen > uint64(r.Len()-start) {
		return Record{}, fmt.Errorf("record header of %d bytes at %d: %w", headerLen, start, ErrTruncated)
	}
	headerEnd := start + int(headerLen)

	var types []SerialType
	for r.Position() < headerEnd {
		code, err := r.ReadVarint()
		if err != nil {
			return Record{}, fmt.Errorf("serial type %d: %w", len(types), err)
		}
		types = append(types, SerialType(code))
	}
	if r.Position() != headerEnd {
		return Record{}, fmt.Errorf("record header overruns its length %d: %w", headerLen, ErrMalformedRecord)
	}

	values := make([]Value, 0, len(types))
	for i, t := range types {
		v, err := readValue(r, t)
		if err != nil {
			return Record{}, fmt.Errorf("column %d: %w", i, err)
		}
		values = append(values, v)
	}

	return Record{Values: values}, nil
}

func readValue(r *Reader, t SerialType) (Value, error) {
	length, err := t.Length()
	if err != nil {
		return Value{}, err
	}

	data, err := r.ReadBytes(length)
	if err != nil {
		return Value{}, err
	}

	v := Value{Type: t, Bytes: data}
	switch {
	case t == SerialFloat64:
		v.Float = math.Float64frombits(binary.BigEndian.Uint64(data))
	case t == SerialOne:
		v.Int = 1
	case t.IsInteger():
		v.Int = bigEndianInt(data)
	}

	return v, nil
}

// bigEndianInt sign extends a big-endian two's complement integer of 1 to 8 bytes.
func bigEndianInt(b []byte) int64 {
	var n int64
	if len(b) > 0 && b[0]&0x80 != 0 {
		n = -1
	}
	for _, c := range b {
		n = n<<8 | int64(c)
	}
	return n
}
