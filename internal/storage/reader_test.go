package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_Primitives(t *testing.T) {
	r := require.New(t)

	reader := NewReader([]byte{0x0d, 0x10, 0x00, 'a', 'b', 'c', 0xff})

	b, err := reader.ReadByte()
	r.NoError(err)
	r.Equal(byte(0x0d), b)
	r.Equal(1, reader.Position())

	u, err := reader.ReadUint16()
	r.NoError(err)
	r.Equal(uint16(4096), u)
	r.Equal(3, reader.Position())

	s, err := reader.ReadString(3)
	r.NoError(err)
	r.Equal("abc", s)
	r.Equal(6, reader.Position())

	r.NoError(reader.Skip(1))
	r.Equal(7, reader.Position())
	r.Equal(0, reader.Remaining())
}

func TestReader_Positioning(t *testing.T) {
	r := require.New(t)

	reader := NewReader(make([]byte, 10))
	r.NoError(reader.SetPosition(10))
	r.Equal(10, reader.Position())
	r.NoError(reader.SetPosition(4))
	r.Equal(4, reader.Position())

	r.ErrorIs(reader.SetPosition(11), ErrTruncated)
	r.ErrorIs(reader.SetPosition(-1), ErrTruncated)
	r.ErrorIs(reader.Skip(-1), ErrTruncated)
	r.Equal(4, reader.Position())
}

func TestReader_BoundsChecked(t *testing.T) {
	r := require.New(t)

	reader := NewReader([]byte{0x01})
	_, err := reader.ReadUint16()
	r.ErrorIs(err, ErrTruncated)
	r.Equal(0, reader.Position())

	_, err = reader.ReadString(2)
	r.ErrorIs(err, ErrTruncated)

	r.ErrorIs(reader.Skip(2), ErrTruncated)

	_, err = reader.ReadByte()
	r.NoError(err)
	_, err = reader.ReadByte()
	r.ErrorIs(err, ErrTruncated)
}

func TestReader_ReadStringCopies(t *testing.T) {
	r := require.New(t)

	data := []byte("apples")
	s, err := NewReader(data).ReadString(6)
	r.NoError(err)

	data[0] = 'A'
	r.Equal("apples", s)
}
