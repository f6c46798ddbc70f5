// Package policy turns a compiled security policy blob into C source that
// embeds it as a static byte array.
package policy

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"

	"github.com/xen-tools/gen-policy/internal/templates"
)

// literalsPerLine is the number of byte literals written before a line break.
const literalsPerLine = 13

const hexDigits = "0123456789abcdef"

var (
	loadOnce sync.Once
	preamble *template.Template
	trailer  *template.Template
	loadErr  error
)

// trailerData is what trailer.tmpl renders against.
type trailerData struct {
	Symbols
	Count int64
}

func loadTemplates() error {
	loadOnce.Do(func() {
		if preamble, loadErr = templates.Parse("preamble.tmpl"); loadErr != nil {
			return
		}
		trailer, loadErr = templates.Parse("trailer.tmpl")
	})
	return loadErr
}

// Transcode reads r to EOF and writes the C source embedding its bytes to w.
//
// Each byte becomes a " 0xhh," literal, with a newline after every 13th.
// The returned count is the number of bytes consumed from r, which is also
// the size declared in the output. On error, output already written to w
// is left in place and the count reflects the bytes read so far.
func Transcode(w io.Writer, r io.Reader) (int64, error) {
	if err := loadTemplates(); err != nil {
		return 0, err
	}

	sym := FlaskSymbols()
	bw := bufio.NewWriter(w)
	if err := preamble.Execute(bw, sym); err != nil {
		return 0, fmt.Errorf("failed to write policy source: %w", err)
	}

	br := bufio.NewReader(r)
	lit := [6]byte{' ', '0', 'x', 0, 0, ','}
	var count int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			bw.Flush()
			return count, fmt.Errorf("failed to read policy: %w", err)
		}

		lit[3] = hexDigits[b>>4]
		lit[4] = hexDigits[b&0x0f]
		if _, err := bw.Write(lit[:]); err != nil {
			return count, fmt.Errorf("failed to write policy source: %w", err)
		}
		count++
		if count%literalsPerLine == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return count, fmt.Errorf("failed to write policy source: %w", err)
			}
		}
	}

	if err := trailer.Execute(bw, trailerData{Symbols: sym, Count: count}); err != nil {
		return count, fmt.Errorf("failed to write policy source: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return count, fmt.Errorf("failed to write policy source: %w", err)
	}
	return count, nil
}

// Render returns the C source for b as a string.
// It panics only if the embedded templates are broken.
func Render(b []byte) string {
	var sb strings.Builder
	if _, err := Transcode(&sb, bytes.NewReader(b)); err != nil {
		panic(err)
	}
	return sb.String()
}
