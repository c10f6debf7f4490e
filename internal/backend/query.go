package backend

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/sqlread/internal/storage"
)

// DbInfo is the result of the .dbinfo command.
type DbInfo struct {
	PageSize int
	// NumTables is the number of cells on page 1, one per schema row.
	NumTables int
}

// Info decodes the page size and the number of schema rows.
func (e *Engine) Info() (DbInfo, error) {
	r := e.file.Reader()

	header, err := storage.ReadFileHeader(r)
	if err != nil {
		return DbInfo{}, err
	}

	// The first page header directly follows the file header.
	page, err := storage.ReadPageHeader(r)
	if err != nil {
		return DbInfo{}, fmt.Errorf("page [1] header: %w", err)
	}

	e.log.WithFields(logrus.Fields{
		"page_size": header.Size(),
		"cells":     page.NumCells,
	}).Debug("dbinfo")

	return DbInfo{
		PageSize:  header.Size(),
		NumTables: int(page.NumCells),
	}, nil
}

// Schema decodes every row of the schema table in storage order.
func (e *Engine) Schema() ([]storage.SchemaRecord, error) {
	var rows []storage.SchemaRecord
	err := e.scanSchema(func(s storage.SchemaRecord) bool {
		rows = append(rows, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Tables lists the table name of every schema row not managed by the
// engine itself, in storage order.
func (e *Engine) Tables() ([]string, error) {
	var names []string
	err := e.scanSchema(func(s storage.SchemaRecord) bool {
		if !s.Internal() {
			names = append(names, s.TableName)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Count returns the number of cells on the root page of table.
// The first schema row whose table name matches wins. When nothing matches,
// the root page of the last row scanned is used.
// TODO: walk interior pages so tables larger than one leaf are counted correctly.
func (e *Engine) Count(table string) (int, error) {
	rootPage := 0
	found := false
	err := e.scanSchema(func(s storage.SchemaRecord) bool {
		rootPage = s.RootPage
		if s.TableName == table {
			found = true
			return false
		}
		return true
	})
	if err != nil {
		return 0, err
	}

	log := e.log.WithFields(logrus.Fields{
		"table":     table,
		"root_page": rootPage,
	})
	if !found {
		log.Warn("table not found in schema, using the last root page scanned")
	}

	r := e.file.Reader()
	header, err := e.file.ReadPageHeader(r, rootPage)
	if err != nil {
		return 0, fmt.Errorf("table %s: %w", table, err)
	}
	e.checkLeaf(rootPage, header.Type)

	log.WithField("cells", header.NumCells).Debug("count")

	return int(header.NumCells), nil
}

// scanSchema decodes the schema rows on page 1 in storage order until fn returns false.
func (e *Engine) scanSchema(fn func(storage.SchemaRecord) bool) error {
	r := e.file.Reader()

	page, err := e.file.ReadPage(r, 1)
	if err != nil {
		return err
	}
	e.checkLeaf(page.Number, page.Type)

	for i := range page.CellPointers {
		_, rec, err := page.ReadCell(r, i)
		if err != nil {
			return err
		}

		schema, err := storage.SchemaFromRecord(rec)
		if err != nil {
			return fmt.Errorf("page [1] cell %d: %w", i, err)
		}

		if !fn(schema) {
			return nil
		}
	}

	return nil
}
