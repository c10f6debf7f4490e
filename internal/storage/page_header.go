package storage

import "fmt"

// PageType type of page. See associated enumeration values.
type PageType byte

const (
	// PageTypeInternal internal table page
	PageTypeInternal PageType = 0x05

	// PageTypeLeaf leaf table page
	PageTypeLeaf PageType = 0x0D

	// PageTypeInternalIndex internal index page
	PageTypeInternalIndex PageType = 0x02

	// PageTypeLeafIndex leaf index page
	PageTypeLeafIndex PageType = 0x0A
)

func (t PageType) String() string {
	switch t {
	case PageTypeInternal:
		return "interior table"
	case PageTypeLeaf:
		return "leaf table"
	case PageTypeInternalIndex:
		return "interior index"
	case PageTypeLeafIndex:
		return "leaf index"
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(t))
}

// PageHeaderSize is the size of a leaf page b-tree header.
const PageHeaderSize = 8

// PageHeader contains metadata about the page.
// Only the leaf layout is decoded, interior pages carry a 4 byte right
// pointer after these fields which is not read.
// Example first page header
// 0D (00 00) (00 03) (0F 8A) (00)
type PageHeader struct {
	// Type is the PageType for the page
	Type PageType

	// FreeBlock is the start of the first freeblock on the page, or zero if there are none.
	FreeBlock uint16

	// NumCells is the number of cells stored in this page.
	NumCells uint16

	// CellsOffset the start of the cell content area. A zero value is interpreted as 65536.
	CellsOffset uint16

	// FragmentedFreeBytes the number of fragmented free bytes within the cell content area.
	FragmentedFreeBytes byte
}

// ReadPageHeader decodes the 8 byte header at the reader's position.
func ReadPageHeader(r *Reader) (PageHeader, error) {
	var h PageHeader

	pageType, err := r.ReadByte()
	if err != nil {
		return h, fmt.Errorf("page type: %w", err)
	}
	h.Type = PageType(pageType)

	if h.FreeBlock, err = r.ReadUint16(); err != nil {
		return h, fmt.Errorf("first freeblock: %w", err)
	}
	if h.NumCells, err = r.ReadUint16(); err != nil {
		return h, fmt.Errorf("cell count: %w", err)
	}
	if h.CellsOffset, err = r.ReadUint16(); err != nil {
		return h, fmt.Errorf("cell content start: %w", err)
	}
	if h.FragmentedFreeBytes, err = r.ReadByte(); err != nil {
		return h, fmt.Errorf("fragmented free bytes: %w", err)
	}

	return h, nil
}

// ReadCellPointers reads n cell pointers. Each pointer is the offset of a
// cell from the start of its page, in storage order.
func ReadCellPointers(r *Reader, n int) ([]uint16, error) {
	pointers := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		p, err := r.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("cell pointer %d: %w", i, err)
		}
		pointers = append(pointers, p)
	}
	return pointers, nil
}
