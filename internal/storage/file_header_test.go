package storage

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileHeader_Write(t *testing.T) {
	assert := require.New(t)

	buf := bytes.Buffer{}
	h := NewFileHeader(4096)

	_, err := h.WriteTo(&buf)
	assert.NoError(err)

	bs := buf.Bytes()
	assert.Equal([]byte{'S', 'Q', 'L', 'i', 't', 'e', ' ', 'f', 'o', 'r', 'm', 'a', 't', ' ', '3', 0}, bs[:16])
	assert.Equal(h.PageSize, binary.BigEndian.Uint16(bs[16:18]))
	assert.Len(bs, FileHeaderSize)
}

func TestFileHeader_Read(t *testing.T) {
	assert := require.New(t)

	bs := make([]byte, 120)
	bs[16], bs[17] = 0x10, 0x00

	reader := NewReader(bs)
	h, err := ReadFileHeader(reader)
	assert.NoError(err)
	assert.Equal(uint16(4096), h.PageSize)
	assert.Equal(4096, h.Size())
	assert.Equal(FileHeaderSize, reader.Position())
}

func TestFileHeader_RoundTrip(t *testing.T) {
	assert := require.New(t)

	for _, size := range []int{512, 1024, 4096, 32768, 65536} {
		buf := bytes.Buffer{}
		_, err := NewFileHeader(size).WriteTo(&buf)
		assert.NoError(err)

		h, err := ReadFileHeader(NewReader(buf.Bytes()))
		assert.NoError(err)
		assert.Equal(size, h.Size())
	}
}

func TestFileHeader_ShortFile(t *testing.T) {
	assert := require.New(t)

	reader := NewReader(make([]byte, 99))
	_, err := ReadFileHeader(reader)
	assert.ErrorIs(err, ErrShortFile)
	assert.Equal(0, reader.Position())
}
