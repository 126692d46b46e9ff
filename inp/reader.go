package inp

import (
	"bufio"
	"os"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mdlj/errs"
)

// keywordReader is a line-oriented reader for the case file's
// "keyword value..." format, grounded on FileReader's readLine /
// readKeyword / readDouble / readInt / readString sequence: each
// logical record is its own line, and a mismatched keyword or an
// unparsable value raises a data error naming the file and line.
type keywordReader struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	lineNo  int
	fields  []string
}

func newKeywordReader(path string) (*keywordReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewIOError(path, err)
	}
	return &keywordReader{path: path, file: f, scanner: bufio.NewScanner(f)}, nil
}

func (r *keywordReader) close() {
	r.file.Close()
}

// readLine advances to the next non-exhausted line, splitting it into
// whitespace-separated fields. Returns false at end of file.
func (r *keywordReader) readLine() bool {
	if !r.scanner.Scan() {
		r.fields = nil
		return false
	}
	r.lineNo++
	r.fields = strings.Fields(r.scanner.Text())
	return true
}

func (r *keywordReader) dataErr(msg string, args ...interface{}) error {
	return errs.NewDataError(r.path, r.lineNo, msg, args...)
}

// keywordLine reads a line, checks its first field equals keyword,
// then consumes it, leaving any remaining fields on the line ready
// for float/int_ to read in order.
func (r *keywordReader) keywordLine(keyword string) error {
	if !r.readLine() {
		return r.dataErr("keyword %q was expected, but end of file was found", keyword)
	}
	if len(r.fields) == 0 || r.fields[0] != keyword {
		return r.dataErr("keyword %q was expected, but not found", keyword)
	}
	r.fields = r.fields[1:]
	return nil
}

func (r *keywordReader) next(label string) (string, error) {
	if len(r.fields) == 0 {
		return "", r.dataErr("value for %s was expected", label)
	}
	s := r.fields[0]
	r.fields = r.fields[1:]
	return s, nil
}

// float and int_ use io.Atof/io.Atoi for numeric conversion, matching
// gofem's own keyword readers (e_p.go, keycodes.go); both panic on a
// malformed string, so a bad value is recovered into a data error
// instead of crashing the rank.
func (r *keywordReader) float(label string) (v float64, err error) {
	s, err := r.next(label)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			v, err = 0, r.dataErr("floating point value for %s was expected", label)
		}
	}()
	v = io.Atof(s)
	return v, nil
}

func (r *keywordReader) int_(label string) (v int, err error) {
	s, err := r.next(label)
	if err != nil {
		return 0, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			v, err = 0, r.dataErr("integer value for %s was expected", label)
		}
	}()
	v = io.Atoi(s)
	return v, nil
}

// labeledString reads a full "label value" line.
func (r *keywordReader) labeledString(label string) (string, error) {
	if err := r.keywordLine(label); err != nil {
		return "", err
	}
	return r.next(label)
}

func (r *keywordReader) labeledFloat(label string) (float64, error) {
	if err := r.keywordLine(label); err != nil {
		return 0, err
	}
	return r.float(label)
}

func (r *keywordReader) labeledInt(label string) (int, error) {
	if err := r.keywordLine(label); err != nil {
		return 0, err
	}
	return r.int_(label)
}
