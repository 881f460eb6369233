// Package export converts a grid's visible columns and filtered rows into a
// spreadsheet file on disk. The spreadsheet library is loaded lazily on first
// use so its cost is only paid when an export actually runs.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"
)

// ErrNoData is returned when an export is requested for a grid whose filtered
// row set is empty. No file is written in that case.
var ErrNoData = errors.New("no data available to export")

// Sheet is the flat projection of a grid: header labels in visible-column
// order and one record per filtered row, keyed by header label.
type Sheet struct {
	Headers []string
	Records []map[string]string
}

// Writer persists a sheet to a file.
type Writer interface {
	Write(sheet Sheet, path string) error
}

var (
	writerOnce   sync.Once
	loadedWriter Writer
)

// loadWriter memoizes the spreadsheet writer so the excelize dependency is
// initialized at most once per process, and only when exporting.
func loadWriter() Writer {
	writerOnce.Do(func() {
		loadedWriter = newXLSXWriter()
	})
	return loadedWriter
}

// Exporter writes sheets for one grid instance, naming files
// <prefix>_<ISO-date>.xlsx inside the configured directory.
type Exporter struct {
	prefix string
	dir    string

	now  func() time.Time
	load func() Writer
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the time source used for the filename date.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// WithWriterLoader overrides the lazy writer loader. Tests use this to avoid
// touching the filesystem.
func WithWriterLoader(load func() Writer) Option {
	return func(e *Exporter) {
		e.load = load
	}
}

// NewExporter builds an exporter with the provided filename prefix writing
// into dir ("" means the current working directory).
func NewExporter(prefix, dir string, opts ...Option) *Exporter {
	e := &Exporter{
		prefix: prefix,
		dir:    dir,
		now:    time.Now,
		load:   loadWriter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the sheet to disk and returns the written path. An empty
// record set fails with ErrNoData before any file is produced.
func (e *Exporter) Export(sheet Sheet) (string, error) {
	if len(sheet.Records) == 0 {
		return "", ErrNoData
	}

	filename := fmt.Sprintf("%s_%s.xlsx", e.prefix, e.now().Format("2006-01-02"))
	path := filepath.Join(e.dir, filename)

	writer := e.load()
	if writer == nil {
		return "", errors.New("export: spreadsheet writer unavailable")
	}

	if err := writer.Write(sheet, path); err != nil {
		return "", fmt.Errorf("export: writing %s: %w", filename, err)
	}

	return path, nil
}
