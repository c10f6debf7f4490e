package storage

import "fmt"

// Page is the decoded header and cell pointer array of one b-tree page.
type Page struct {
	PageHeader

	// Number is the 1-based page number.
	Number int

	// Offset is the byte offset of the page in the file.
	Offset int

	// CellPointers are cell offsets relative to Offset, in storage order.
	CellPointers []uint16
}

// ReadCell moves r to cell i and decodes its header and record.
// TODO: payloads that spill onto overflow pages are read as if they were
// stored inline.
func (p *Page) ReadCell(r *Reader, i int) (CellHeader, Record, error) {
	if i < 0 || i >= len(p.CellPointers) {
		return CellHeader{}, Record{}, fmt.Errorf("cell index %d out of range", i)
	}

	if err := r.SetPosition(p.Offset + int(p.CellPointers[i])); err != nil {
		return CellHeader{}, Record{}, fmt.Errorf("page [%d] cell %d: %w", p.Number, i, err)
	}

	header, err := ReadCellHeader(r)
	if err != nil {
		return CellHeader{}, Record{}, fmt.Errorf("page [%d] cell %d: %w", p.Number, i, err)
	}

	record, err := ReadRecord(r)
	if err != nil {
		return CellHeader{}, Record{}, fmt.Errorf("page [%d] cell %d: %w", p.Number, i, err)
	}

	return header, record, nil
}
