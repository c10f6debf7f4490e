package storage

import (
	"io"
)

// MaxVarintLen is the longest encoding of a varint.
const MaxVarintLen = 9

// ReadVarint decodes a variable-length integer.
// The first eight bytes each contribute their low 7 bits, most significant
// group first, for as long as the high bit is set. A ninth byte contributes
// all 8 of its bits. Returns the value and the number of bytes consumed.
func ReadVarint(reader io.ByteReader) (uint64, int, error) {
	var result uint64

	for i := 0; i < MaxVarintLen; i++ {
		b, err := reader.ReadByte()
		if err != nil {
			return 0, i, err
		}

		if i == MaxVarintLen-1 {
			return result<<8 | uint64(b), MaxVarintLen, nil
		}

		result = result<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
	}

	return result, MaxVarintLen, nil
}

// AppendVarint appends the varint encoding of v to buf.
func AppendVarint(buf []byte, v uint64) []byte {
	// Values wider than 56 bits take all nine bytes, the last one holding 8 bits.
	if v > 0x00ffffffffffffff {
		var enc [MaxVarintLen]byte
		enc[8] = byte(v)
		v >>= 8
		for i := 7; i >= 0; i-- {
			enc[i] = byte(v&0x7f) | 0x80
			v >>= 7
		}
		return append(buf, enc[:]...)
	}

	// Collect 7 bit groups least significant first, then emit them reversed.
	var groups [MaxVarintLen - 1]byte
	n := 0
	for {
		groups[n] = byte(v & 0x7f)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}

	for i := n - 1; i >= 0; i-- {
		b := groups[i]
		if i > 0 {
			b |= 0x80
		}
		buf = append(buf, b)
	}

	return buf
}

// VarintLen returns the number of bytes needed to encode v.
func VarintLen(v uint64) int {
	if v > 0x00ffffffffffffff {
		return MaxVarintLen
	}
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// WriteVarint writes the varint encoding of v to w.
func WriteVarint(w io.Writer, v uint64) (int, error) {
	return w.Write(AppendVarint(nil, v))
}
