// Package csv writes the data of a gridview.GridView as CSV.
package csv

import (
	"bytes"
	"context"
	"io"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/domonda/go-gridview"
)

// Writer writes the data and serial columns of the current page
// of a gridview.GridView as CSV.
// Action, checkbox, radio and custom columns are skipped.
// All With* methods return a modified copy.
type Writer struct {
	header           bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	delimiter        rune
	newLine          string
	encoding         encoding.Encoding
}

// NewWriter returns a Writer with a header row,
// semicolon delimiter and CRLF line endings
// as expected by spreadsheet applications.
func NewWriter() *Writer {
	return &Writer{
		header:       true,
		delimiter:    ';',
		escapeQuotes: `""`,
		newLine:      "\r\n",
	}
}

func (w *Writer) clone() *Writer {
	c := *w
	return &c
}

// WithHeader returns a copy that writes the column labels
// as first row if enabled.
func (w *Writer) WithHeader(header bool) *Writer {
	mod := w.clone()
	mod.header = header
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.clone()
	mod.delimiter = delimiter
	return mod
}

func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.clone()
	mod.newLine = newLine
	return mod
}

// WithEncoding returns a copy encoding the UTF-8 output
// with enc like charmap.Windows1252.
// Characters not supported by enc are replaced.
func (w *Writer) WithEncoding(enc encoding.Encoding) *Writer {
	mod := w.clone()
	mod.encoding = enc
	return mod
}

func (w *Writer) Delimiter() rune {
	return w.delimiter
}

func (w *Writer) NewLine() string {
	return w.newLine
}

// Write writes the current page of grid to dest.
// The header row contains the translated column labels.
func (w *Writer) Write(ctx context.Context, dest io.Writer, grid *gridview.GridView) error {
	columns, rows, err := grid.Table(ctx)
	if err != nil {
		return err
	}
	var textColumns []*gridview.Column
	for _, column := range columns {
		if column.HasText() {
			textColumns = append(textColumns, column)
		}
	}
	var encoder *encoding.Encoder
	if w.encoding != nil {
		encoder = encoding.ReplaceUnsupported(w.encoding.NewEncoder())
	}

	var (
		rowBuf = bytes.NewBuffer(make([]byte, 0, 1024))
		fields = make([]string, len(textColumns))
	)
	if w.header {
		for i, column := range textColumns {
			if fields[i], err = column.TranslatedLabel(); err != nil {
				return err
			}
		}
		if err = w.writeRow(dest, rowBuf, fields, encoder); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for i, column := range textColumns {
			if fields[i], err = column.Text(row); err != nil {
				return err
			}
		}
		if err = w.writeRow(dest, rowBuf, fields, encoder); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeRow(dest io.Writer, rowBuf *bytes.Buffer, fields []string, encoder *encoding.Encoder) (err error) {
	mustQuoteChars := "\n\"" + string(w.delimiter)
	for col, str := range fields {
		if col > 0 {
			rowBuf.WriteRune(w.delimiter)
		}
		// \n alone is valid within quotes
		str = strings.ReplaceAll(str, "\r", "")
		switch {
		case w.quoteAllFields || strings.ContainsAny(str, mustQuoteChars):
			rowBuf.WriteByte('"')
			rowBuf.WriteString(strings.ReplaceAll(str, `"`, w.escapeQuotes))
			rowBuf.WriteByte('"')
		case w.quoteEmptyFields && str == "":
			rowBuf.WriteString(`""`)
		default:
			rowBuf.WriteString(str)
		}
	}
	rowBuf.WriteString(w.newLine)
	rowBytes := rowBuf.Bytes()
	defer rowBuf.Reset()
	if encoder != nil {
		rowBytes, err = encoder.Bytes(rowBytes)
		if err != nil {
			return err
		}
	}
	_, err = dest.Write(rowBytes)
	return err
}
