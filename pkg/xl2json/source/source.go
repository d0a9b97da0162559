// Package source turns a file name or an in-memory stream into an xlsx byte
// stream. Legacy and delimited formats are decoded and re-encoded in memory.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// Format identifies the container of an input.
type Format string

const (
	FormatUnknown   Format = ""
	FormatXLSX      Format = "xlsx"
	FormatXLS       Format = "xls"
	FormatXLSB      Format = "xlsb"
	FormatCSV       Format = "csv"
	FormatEncrypted Format = "encrypted"
)

// DefaultCharset decodes legacy 8-bit strings and delimited text when no
// other charset is configured.
const DefaultCharset = "windows-1252"

// Adapter opens inputs. It holds no state between calls.
type Adapter struct {
	charset string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithCharset sets the charset name (WHATWG labels such as "windows-1252",
// "shift_jis" or "utf-8").
func WithCharset(name string) Option {
	return func(a *Adapter) {
		if name != "" {
			a.charset = name
		}
	}
}

// New returns an Adapter using DefaultCharset unless overridden.
func New(opts ...Option) *Adapter {
	a := &Adapter{charset: DefaultCharset}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Charset returns the configured charset name.
func (a *Adapter) Charset() string {
	return a.charset
}

// Stream is an opened input. Format is the detected format of the input;
// the bytes read from the stream are always xlsx unless Format is
// FormatEncrypted.
type Stream struct {
	Name   string
	Format Format
	io.ReadCloser
}

// FormatOf classifies a file name by its extension.
func FormatOf(fileName string) Format {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".xlsb":
		return FormatXLSB
	case ".csv":
		return FormatCSV
	}
	return FormatUnknown
}

// Open opens fileName for reading.
func (a *Adapter) Open(fileName string) (*Stream, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, models.ErrMissingFileName
	}

	format := FormatOf(fileName)
	if format == FormatXLSB {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, fileName)
	}

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}

	if format != FormatCSV {
		if sniffed := Sniff(f); sniffed != FormatUnknown {
			format = sniffed
		}
	}

	switch format {
	case FormatXLS:
		defer f.Close()
		buf, err := a.convertXLS(f)
		if err != nil {
			return nil, err
		}
		return &Stream{Name: fileName, Format: format, ReadCloser: io.NopCloser(buf)}, nil
	case FormatCSV:
		defer f.Close()
		buf, err := a.convertCSV(f)
		if err != nil {
			return nil, err
		}
		return &Stream{Name: fileName, Format: format, ReadCloser: io.NopCloser(buf)}, nil
	}

	if format == FormatUnknown {
		format = FormatXLSX
	}
	return &Stream{Name: fileName, Format: format, ReadCloser: f}, nil
}

// OpenReader wraps in-memory input. name only drives format detection and
// may be blank, in which case the content is sniffed.
func (a *Adapter) OpenReader(name string, r io.Reader) (*Stream, error) {
	if r == nil {
		return nil, models.ErrMissingFileContent
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(data)

	format := FormatOf(name)
	if format == FormatXLSB {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, name)
	}
	if format != FormatCSV {
		if sniffed := Sniff(br); sniffed != FormatUnknown {
			format = sniffed
		}
	}

	var buf *bytes.Buffer
	switch format {
	case FormatXLS:
		buf, err = a.convertXLS(br)
	case FormatCSV:
		buf, err = a.convertCSV(br)
	default:
		if format == FormatUnknown {
			format = FormatXLSX
		}
		return &Stream{Name: name, Format: format, ReadCloser: io.NopCloser(br)}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Stream{Name: name, Format: format, ReadCloser: io.NopCloser(buf)}, nil
}
