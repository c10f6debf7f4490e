package storage

import (
	"fmt"
	"os"
)

// DbFile is a database image held fully in memory. The image is read once
// and never modified, so any number of Readers may decode it.
type DbFile struct {
	path   string
	header FileHeader
	data   []byte
}

// OpenDbFile reads the whole database file at path into memory.
func OpenDbFile(path string) (*DbFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := NewDbFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path

	return f, nil
}

// NewDbFile wraps a database image already in memory.
func NewDbFile(data []byte) (*DbFile, error) {
	header, err := ReadFileHeader(NewReader(data))
	if err != nil {
		return nil, err
	}
	if header.Size() == 0 {
		return nil, fmt.Errorf("page size 0: %w", ErrInvalidPageSize)
	}

	return &DbFile{
		header: header,
		data:   data,
	}, nil
}

func (f *DbFile) Path() string {
	return f.path
}

func (f *DbFile) Header() FileHeader {
	return f.header
}

func (f *DbFile) PageSize() int {
	return f.header.Size()
}

// TotalPages is the number of pages that start inside the image.
func (f *DbFile) TotalPages() int {
	return (len(f.data) + f.PageSize() - 1) / f.PageSize()
}

// Reader returns a new cursor at the start of the image.
func (f *DbFile) Reader() *Reader {
	return NewReader(f.data)
}

// PageOffset is the byte offset of the start of a page.
func (f *DbFile) PageOffset(page int) (int, error) {
	if page < 1 || page > f.TotalPages() {
		return 0, fmt.Errorf("page [%d] of %d: %w", page, f.TotalPages(), ErrPageOutOfBounds)
	}
	return (page - 1) * f.PageSize(), nil
}

// PageHeaderOffset is the byte offset of a page's b-tree header.
// Page one is a special case, its header follows the file header.
func (f *DbFile) PageHeaderOffset(page int) (int, error) {
	offset, err := f.PageOffset(page)
	if err != nil {
		return 0, err
	}
	if page == 1 {
		offset += FileHeaderSize
	}
	return offset, nil
}

// ReadPageHeader moves r to the header of page and decodes it.
func (f *DbFile) ReadPageHeader(r *Reader, page int) (PageHeader, error) {
	offset, err := f.PageHeaderOffset(page)
	if err != nil {
		return PageHeader{}, err
	}
	if err := r.SetPosition(offset); err != nil {
		return PageHeader{}, err
	}

	h, err := ReadPageHeader(r)
	if err != nil {
		return PageHeader{}, fmt.Errorf("page [%d] header: %w", page, err)
	}
	return h, nil
}

// ReadPage decodes the header and cell pointer array of a page.
func (f *DbFile) ReadPage(r *Reader, page int) (*Page, error) {
	header, err := f.ReadPageHeader(r, page)
	if err != nil {
		return nil, err
	}

	pointers, err := ReadCellPointers(r, int(header.NumCells))
	if err != nil {
		return nil, fmt.Errorf("page [%d]: %w", page, err)
	}

	// Bounds were checked by ReadPageHeader.
	offset, _ := f.PageOffset(page)

	return &Page{
		PageHeader:   header,
		Number:       page,
		Offset:       offset,
		CellPointers: pointers,
	}, nil
}
