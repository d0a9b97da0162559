// Package output serializes records and form fields to indented JSON.
package output

import (
	"bytes"
	"io"
	"iter"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// indented is the stream configuration shared by every Encoder.
var indented = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// Encoder writes JSON to an io.Writer as values are produced. Output is
// flushed after every record so memory stays bounded by one record.
type Encoder struct {
	stream *jsoniter.Stream
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{stream: jsoniter.NewStream(indented, w, 4096)}
}

// WriteArray writes one object per record. An empty sequence gives "[]".
// The first error from seq is returned and the array is left unterminated.
func (e *Encoder) WriteArray(seq iter.Seq2[models.Record, error]) error {
	s := e.stream
	started := false
	for record, err := range seq {
		if err != nil {
			return err
		}
		if started {
			s.WriteMore()
		} else {
			s.WriteArrayStart()
			started = true
		}
		e.writeFields(record)
		if err := e.flush(); err != nil {
			return err
		}
	}
	if started {
		s.WriteArrayEnd()
	} else {
		s.WriteEmptyArray()
	}
	return e.flush()
}

// WriteObject writes the fields of fs as a single object.
func (e *Encoder) WriteObject(fs *models.FieldSet) error {
	var fields models.Record
	if fs != nil {
		fields = fs.Fields()
	}
	e.writeFields(fields)
	return e.flush()
}

func (e *Encoder) writeFields(fields models.Record) {
	s := e.stream
	if len(fields) == 0 {
		s.WriteEmptyObject()
		return
	}
	s.WriteObjectStart()
	for i, f := range fields {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(f.Name)
		writeValue(s, f.Value)
	}
	s.WriteObjectEnd()
}

func writeValue(s *jsoniter.Stream, v any) {
	switch v := v.(type) {
	case nil:
		s.WriteNil()
	case string:
		s.WriteString(v)
	case bool:
		s.WriteBool(v)
	case int64:
		s.WriteInt64(v)
	case int:
		s.WriteInt(v)
	case float64:
		s.WriteFloat64(v)
	case time.Time:
		s.WriteString(v.Format(time.RFC3339Nano))
	default:
		s.WriteVal(v)
	}
}

func (e *Encoder) flush() error {
	return e.stream.Flush()
}

// EmitArray renders records as a JSON array string.
func EmitArray(seq iter.Seq2[models.Record, error]) (string, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).WriteArray(seq); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EmitObject renders fs as a JSON object string.
func EmitObject(fs *models.FieldSet) (string, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).WriteObject(fs); err != nil {
		return "", err
	}
	return buf.String(), nil
}
