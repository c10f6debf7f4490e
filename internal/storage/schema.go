package storage

import (
	"fmt"
	"strings"
)

// ReservedPrefix starts the name of every table the database engine manages itself.
const ReservedPrefix = "sqlite_"

// Column order of the schema table:
//
// CREATE TABLE sqlite_schema(
//    type text,
//    name text,
//    tbl_name text,
//    rootpage integer,
//    sql text
// );
const (
	schemaColumnType = iota
	schemaColumnName
	schemaColumnTableName
	schemaColumnRootPage
	schemaColumnSQL

	schemaColumns
)

// SchemaRecord is one row of the schema table stored on page 1.
type SchemaRecord struct {
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	TableName string `yaml:"table_name"`
	RootPage  int    `yaml:"root_page"`
	SQL       string `yaml:"sql"`
}

// Internal reports whether the row describes an object the engine manages
// itself, such as sqlite_sequence or an automatic index.
func (s SchemaRecord) Internal() bool {
	return strings.HasPrefix(s.Name, ReservedPrefix) || strings.HasPrefix(s.TableName, ReservedPrefix)
}

// SchemaFromRecord projects a decoded record onto the schema table columns.
// Columns past sql are ignored.
func SchemaFromRecord(rec Record) (SchemaRecord, error) {
	if len(rec.Values) < schemaColumns {
		return SchemaRecord{}, fmt.Errorf("schema row has %d columns, want %d: %w",
			len(rec.Values), schemaColumns, ErrMalformedRecord)
	}

	root := rec.Values[schemaColumnRootPage]
	if !root.IsNull() && !root.Type.IsInteger() {
		return SchemaRecord{}, fmt.Errorf("root page stored as serial type %d: %w",
			uint64(root.Type), ErrMalformedRecord)
	}

	return SchemaRecord{
		Type:      rec.Values[schemaColumnType].Text(),
		Name:      rec.Values[schemaColumnName].Text(),
		TableName: rec.Values[schemaColumnTableName].Text(),
		RootPage:  int(root.Uint()),
		SQL:       rec.Values[schemaColumnSQL].Text(),
	}, nil
}

// ReadSchemaRecord decodes a schema table record at the reader's position.
func ReadSchemaRecord(r *Reader) (SchemaRecord, error) {
	rec, err := ReadRecord(r)
	if err != nil {
		return SchemaRecord{}, err
	}
	return SchemaFromRecord(rec)
}
