package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testPageSize = 4096

type DbFileTestSuite struct {
	suite.Suite
	data []byte
	file *DbFile
}

func TestDbFileTestSuite(t *testing.T) {
	suite.Run(t, new(DbFileTestSuite))
}

func (s *DbFileTestSuite) SetupTest() {
	schema := NewPage(1, testPageSize)
	apples, err := EncodeRecord("table", "apples", "apples", 2, "CREATE TABLE apples (name text)")
	s.NoError(err)
	s.NoError(schema.AddCell(1, apples))

	rows := NewPage(2, testPageSize)
	for i, name := range []string{"fuji", "gala", "honeycrisp"} {
		rec, err := EncodeRecord(name)
		s.NoError(err)
		s.NoError(rows.AddCell(int64(i+1), rec))
	}

	s.data, err = BuildDatabase(testPageSize, schema, rows)
	s.NoError(err)
	s.Len(s.data, 2*testPageSize)

	s.file, err = NewDbFile(s.data)
	s.NoError(err)
}

func (s *DbFileTestSuite) TestHeader() {
	s.Equal(testPageSize, s.file.PageSize())
	s.Equal(2, s.file.TotalPages())
}

func (s *DbFileTestSuite) TestReadPage_SchemaCells() {
	r := s.file.Reader()

	page, err := s.file.ReadPage(r, 1)
	s.NoError(err)
	s.Equal(PageTypeLeaf, page.Type)
	s.Equal(uint16(1), page.NumCells)
	s.Equal(0, page.Offset)
	s.Len(page.CellPointers, 1)

	cell, rec, err := page.ReadCell(r, 0)
	s.NoError(err)
	s.Equal(int64(1), cell.RowID)

	schema, err := SchemaFromRecord(rec)
	s.NoError(err)
	s.Equal("apples", schema.TableName)
	s.Equal(2, schema.RootPage)

	_, _, err = page.ReadCell(r, 1)
	s.Error(err)
}

func (s *DbFileTestSuite) TestReadPage_DataPage() {
	r := s.file.Reader()

	page, err := s.file.ReadPage(r, 2)
	s.NoError(err)
	s.Equal(testPageSize, page.Offset)
	s.Equal(uint16(3), page.NumCells)

	var names []string
	for i := range page.CellPointers {
		cell, rec, err := page.ReadCell(r, i)
		s.NoError(err)
		s.Equal(int64(i+1), cell.RowID)
		names = append(names, rec.Values[0].Text())
	}
	s.Equal([]string{"fuji", "gala", "honeycrisp"}, names)
}

func (s *DbFileTestSuite) TestPageOffsets() {
	offset, err := s.file.PageHeaderOffset(1)
	s.NoError(err)
	s.Equal(FileHeaderSize, offset)

	offset, err = s.file.PageHeaderOffset(2)
	s.NoError(err)
	s.Equal(testPageSize, offset)

	_, err = s.file.PageOffset(0)
	s.ErrorIs(err, ErrPageOutOfBounds)
	_, err = s.file.PageOffset(3)
	s.ErrorIs(err, ErrPageOutOfBounds)
}

func (s *DbFileTestSuite) TestCorruptCellPointer() {
	// Point the only schema cell past the end of the image
	s.data[FileHeaderSize+PageHeaderSize] = 0xFF
	s.data[FileHeaderSize+PageHeaderSize+1] = 0xFF

	r := s.file.Reader()
	page, err := s.file.ReadPage(r, 1)
	s.NoError(err)

	_, _, err = page.ReadCell(r, 0)
	s.ErrorIs(err, ErrTruncated)
}

func TestNewDbFile_Errors(t *testing.T) {
	assert := require.New(t)

	_, err := NewDbFile(make([]byte, 50))
	assert.ErrorIs(err, ErrShortFile)

	_, err = NewDbFile(make([]byte, 200))
	assert.ErrorIs(err, ErrInvalidPageSize)
}

func TestOpenDbFile(t *testing.T) {
	assert := require.New(t)

	data, err := BuildDatabase(512, NewPage(1, 512))
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "empty.db")
	assert.NoError(os.WriteFile(path, data, 0o644))

	f, err := OpenDbFile(path)
	assert.NoError(err)
	assert.Equal(path, f.Path())
	assert.Equal(512, f.PageSize())

	_, err = OpenDbFile(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(err, os.ErrNotExist)
}
