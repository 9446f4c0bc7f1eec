package records

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jmgilman/fileaccess/access"
	ferrors "github.com/jmgilman/fileaccess/errors"
)

// Dialect configures delimited reading and writing.
type Dialect struct {
	// Comma is the field delimiter.
	Comma rune
	// Comment starts a line that is skipped when reading. Zero disables it.
	Comment rune
	// Ragged allows rows with differing field counts.
	Ragged bool
}

var (
	// CSV is comma separated values.
	CSV = Dialect{Comma: ','}
	// TSV is tab separated values.
	TSV = Dialect{Comma: '\t'}
)

// DialectFor returns TSV for a ".tsv" suffix and CSV otherwise.
func DialectFor(path string) Dialect {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return TSV
	}
	return CSV
}

func (d Dialect) reader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = d.Comma
	cr.Comment = d.Comment
	if d.Ragged {
		cr.FieldsPerRecord = -1
	}
	return cr
}

func (d Dialect) writer(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = d.Comma
	return cw
}

// ReadRows parses the whole file as delimited rows.
func ReadRows(a *access.Accessor, path string, d Dialect) ([][]string, error) {
	var rows [][]string
	err := EachRow(a, path, d, func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ErrStop can be returned by an EachRow callback to end iteration early
// without failing the access.
var ErrStop = errors.New("stop iteration")

// EachRow calls fn for every row in order.
func EachRow(a *access.Accessor, path string, d Dialect, fn func(row []string) error) error {
	return access.Do(a, access.Read(path), func(h access.Handle) error {
		cr := d.reader(h)
		for {
			row, err := cr.Read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			for i, field := range row {
				if !utf8.ValidString(field) {
					line, col := cr.FieldPos(i)
					return &csv.ParseError{StartLine: line, Line: line, Column: col, Err: ferrors.ErrInvalidUTF8}
				}
			}
			if err := fn(row); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
	})
}

// WriteRows replaces the file with rows.
func WriteRows(a *access.Accessor, path string, d Dialect, rows [][]string) error {
	return writeRows(a, access.Write(path), d, rows)
}

// AppendRows adds rows to the end of the file.
func AppendRows(a *access.Accessor, path string, d Dialect, rows ...[]string) error {
	return writeRows(a, access.Append(path), d, rows)
}

func writeRows(a *access.Accessor, req access.Request, d Dialect, rows [][]string) error {
	return access.Do(a, req, func(h access.Handle) error {
		cw := d.writer(h)
		if err := cw.WriteAll(rows); err != nil {
			return err
		}
		return cw.Error()
	})
}
