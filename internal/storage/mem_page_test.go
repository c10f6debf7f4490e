package storage

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemPage_AddCell(t *testing.T) {
	assert := require.New(t)

	page := NewPage(2, 256)
	record, err := EncodeRecord(1337)
	assert.NoError(err)
	assert.Equal([]byte{0x02, 0x02, 0x05, 0x39}, record)

	assert.NoError(page.AddCell(7, record))

	// 250 = 256 bytes - (payload size + row id + 4 byte record)
	assert.Equal([]byte{0x0D, 0x00, 0x00, 0x00, 0x01, 0x00, 0xFA, 0x00}, page.Data[:8])
	assert.Equal([]byte{0x00, 0xFA}, page.Data[8:10])
	assert.Equal([]byte{0x04, 0x07, 0x02, 0x02, 0x05, 0x39}, page.Data[250:])

	startOffset := page.CellsOffset
	for i := 1; i <= 10; i++ {
		assert.NoError(page.AddCell(int64(7+i), record))
		assert.Equal(uint16(1+i), page.NumCells)
		assert.Equal(startOffset-uint16(6*i), page.CellsOffset)
		assert.Equal(page.CellsOffset, binary.BigEndian.Uint16(page.Data[8+2*i:]))
	}
}

func TestMemPage_PageOneHeaderAfterFileHeader(t *testing.T) {
	assert := require.New(t)

	page := NewPage(1, 512)
	assert.NoError(page.AddCell(1, []byte{0x01}))

	assert.Equal(byte(PageTypeLeaf), page.Data[FileHeaderSize])
	assert.Equal(uint16(1), binary.BigEndian.Uint16(page.Data[FileHeaderSize+3:]))
	assert.Equal(uint16(509), binary.BigEndian.Uint16(page.Data[FileHeaderSize+PageHeaderSize:]))
}

func TestMemPage_Full(t *testing.T) {
	assert := require.New(t)

	page := NewPage(2, 64)
	assert.Error(page.AddCell(1, make([]byte, 60)))
	assert.Equal(uint16(0), page.NumCells)
}
