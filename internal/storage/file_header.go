package storage

import (
	"encoding/binary"
	"fmt"
	"io"
)

// FileHeaderSize is the size of the header at the start of every database file.
// The b-tree header of page 1 follows it.
const FileHeaderSize = 100

// FileHeader represents a database file header
type FileHeader struct {
	// 16-17	PageSize	uint16	Size of database page. The value 1 means 65536.
	PageSize uint16
}

// NewFileHeader creates a new FileHeader
func NewFileHeader(pageSize int) FileHeader {
	h := FileHeader{PageSize: uint16(pageSize)}
	if pageSize == 65536 {
		h.PageSize = 1
	}
	return h
}

// Size is the page size in bytes.
func (h FileHeader) Size() int {
	if h.PageSize == 1 {
		return 65536
	}
	return int(h.PageSize)
}

// ReadFileHeader decodes the file header. The reader must be positioned at
// the start of the file and is left at offset 100, the first page header.
func ReadFileHeader(r *Reader) (FileHeader, error) {
	if r.Remaining() < FileHeaderSize {
		return FileHeader{}, fmt.Errorf("%d bytes available: %w", r.Remaining(), ErrShortFile)
	}

	// 0-15 magic string, not interpreted
	if err := r.Skip(16); err != nil {
		return FileHeader{}, err
	}

	pageSize, err := r.ReadUint16()
	if err != nil {
		return FileHeader{}, err
	}

	// 18-99 format versions, counters and cookies, not interpreted
	if err := r.Skip(82); err != nil {
		return FileHeader{}, err
	}

	return FileHeader{PageSize: pageSize}, nil
}

// WriteTo writes the FileHeader to w
func (h FileHeader) WriteTo(w io.Writer) (int64, error) {
	data := make([]byte, FileHeaderSize)
	copy(data, "SQLite format 3\000")

	binary.BigEndian.PutUint16(data[16:], h.PageSize)

	// 18	1	File format write version. 1 for legacy; 2 for WAL.
	data[18] = 1
	// 19	1	File format read version. 1 for legacy; 2 for WAL.
	data[19] = 1
	// 21	1	Maximum embedded payload fraction. Must be 64.
	data[21] = 64
	// 22	1	Minimum embedded payload fraction. Must be 32.
	data[22] = 32
	// 23	1	Leaf payload fraction. Must be 32.
	data[23] = 32

	binary.BigEndian.PutUint32(data[44:], 4) // Schema format
	binary.BigEndian.PutUint32(data[56:], 1) // UTF-8

	n, err := w.Write(data)
	return int64(n), err
}
