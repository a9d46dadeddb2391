// Package parts provides streaming input and atomic output for parts
// catalog tables (comma-delimited, header row naming fields).
package parts

import (
	"encoding/csv"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"os"
)

// KeyField is the column identifying a part in a catalog table.
const KeyField string = "part_num"

// Header is the ordered field names from the first row of a catalog table.
type Header []string

// Row is one catalog record with fields ordered per the Header.
type Row []string

// Index returns the position of field in h, or -1 if h lacks the field.
func (h Header) Index(field string) int {
	for i := range h {
		if h[i] == field {
			return i
		}
	}
	return -1
}

// GoReadToChan opens a catalog table, parses the header, and spawns a
// goroutine that streams the data rows to the returned channel in file
// order. Input may be gzipped. The channel is closed after the last row.
func GoReadToChan(filename string) (<-chan Row, Header) {
	in := fileio.EasyOpen(filename)
	r := csv.NewReader(in)
	header, err := r.Read()
	exception.PanicOnErr(err)

	ans := make(chan Row, 1000)
	go func() {
		for {
			row, err := r.Read()
			if err == io.EOF {
				break
			}
			exception.PanicOnErr(err)
			ans <- row
		}
		err := in.Close()
		exception.PanicOnErr(err)
		close(ans)
	}()
	return ans, header
}

// Writer emits a catalog table to a temporary file and renames it into
// place on Close, so a failed run never leaves a partial table that
// looks complete.
type Writer struct {
	file  *fileio.EasyWriter
	csv   *csv.Writer
	tmp   string
	final string
}

// NewWriter creates the output table and writes the header row.
// Nothing is visible at filename until Close returns nil.
func NewWriter(filename string, header Header) *Writer {
	w := &Writer{tmp: filename + ".tmp", final: filename}
	w.file = fileio.EasyCreate(w.tmp)
	w.csv = csv.NewWriter(w.file)
	err := w.csv.Write(header)
	exception.PanicOnErr(err)
	return w
}

// Write appends one row to the output table.
func (w *Writer) Write(r Row) {
	err := w.csv.Write(r)
	exception.PanicOnErr(err)
}

// Close flushes buffered rows and moves the finished table into place.
// On failure the tmp file is removed so nothing half-written survives.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		os.Remove(w.tmp)
		return err
	}
	if err := w.file.Close(); err != nil {
		os.Remove(w.tmp)
		return err
	}
	return os.Rename(w.tmp, w.final)
}
