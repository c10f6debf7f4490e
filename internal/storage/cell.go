package storage

import "fmt"

// CellHeader precedes the payload of every leaf table cell.
type CellHeader struct {
	PayloadSize uint64
	RowID       int64
}

// ReadCellHeader reads the payload size and row id varints.
func ReadCellHeader(r *Reader) (CellHeader, error) {
	size, err := r.ReadVarint()
	if err != nil {
		return CellHeader{}, fmt.Errorf("payload size: %w", err)
	}

	rowID, err := r.ReadVarint()
	if err != nil {
		return CellHeader{}, fmt.Errorf("row id: %w", err)
	}

	return CellHeader{
		PayloadSize: size,
		RowID:       int64(rowID),
	}, nil
}
