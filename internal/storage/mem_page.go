package storage

import (
	"encoding/binary"
	"fmt"
)

// MemPage is a leaf table page under construction.
type MemPage struct {
	PageHeader
	PageNumber int
	Data       []byte
}

// NewPage creates an empty leaf table page.
func NewPage(page int, pageSize int) *MemPage {
	p := &MemPage{
		PageHeader: PageHeader{
			Type:        PageTypeLeaf,
			CellsOffset: uint16(pageSize),
		},
		PageNumber: page,
		Data:       make([]byte, pageSize),
	}
	p.writeHeader()
	return p
}

// headerOffset is where the b-tree header starts. Page one is a special case,
// the file header occupies its first 100 bytes.
func (p *MemPage) headerOffset() int {
	if p.PageNumber == 1 {
		return FileHeaderSize
	}
	return 0
}

// contentStart is the start of the cell content area. Zero stands for 65536.
func (p *MemPage) contentStart() int {
	if p.CellsOffset == 0 {
		return 65536
	}
	return int(p.CellsOffset)
}

// AddCell stores a record as a new leaf cell with the given row id. Cell
// content grows down from the end of the page, the pointer array grows up
// from the header.
func (p *MemPage) AddCell(rowID int64, record []byte) error {
	cell := AppendVarint(nil, uint64(len(record)))
	cell = AppendVarint(cell, uint64(rowID))
	cell = append(cell, record...)

	pointerOffset := p.headerOffset() + PageHeaderSize + 2*int(p.NumCells)
	cellOffset := p.contentStart() - len(cell)
	if cellOffset < pointerOffset+2 {
		return fmt.Errorf("page [%d] full: cell of %d bytes does not fit", p.PageNumber, len(cell))
	}

	copy(p.Data[cellOffset:], cell)
	binary.BigEndian.PutUint16(p.Data[pointerOffset:], uint16(cellOffset))

	p.CellsOffset = uint16(cellOffset)
	p.NumCells++
	p.writeHeader()

	return nil
}

func (p *MemPage) writeHeader() {
	header := p.Data[p.headerOffset():][:PageHeaderSize]
	header[0] = byte(p.Type)
	binary.BigEndian.PutUint16(header[1:3], p.FreeBlock)
	binary.BigEndian.PutUint16(header[3:5], p.NumCells)
	binary.BigEndian.PutUint16(header[5:7], p.CellsOffset)
	header[7] = p.FragmentedFreeBytes
}
