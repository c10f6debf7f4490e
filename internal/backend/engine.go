package backend

import (
	"github.com/sirupsen/logrus"

	"github.com/joeandaverde/sqlread/internal/storage"
)

// Engine answers read-only queries against a database image loaded into memory.
// Every query decodes with its own cursor, so repeated queries see identical state.
type Engine struct {
	file *storage.DbFile
	log  logrus.FieldLogger
}

// Start loads the database file at path and returns an engine over it.
func Start(log logrus.FieldLogger, path string) (*Engine, error) {
	log.Debugf("loading database [%s]", path)

	file, err := storage.OpenDbFile(path)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"page_size": file.PageSize(),
		"pages":     file.TotalPages(),
	}).Debug("database loaded")

	return NewEngine(log, file), nil
}

// NewEngine creates an engine over an already loaded file.
func NewEngine(log logrus.FieldLogger, file *storage.DbFile) *Engine {
	return &Engine{
		file: file,
		log:  log,
	}
}

// checkLeaf warns when a page that is about to be read as a leaf table page is not one.
// Interior pages are decoded with the leaf header layout regardless.
func (e *Engine) checkLeaf(page int, pageType storage.PageType) {
	if pageType == storage.PageTypeLeaf {
		return
	}
	e.log.WithFields(logrus.Fields{
		"page": page,
		"type": pageType.String(),
	}).Warn("decoding non-leaf page as a leaf table page")
}
