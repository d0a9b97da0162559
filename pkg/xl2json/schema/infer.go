// Package schema infers a record model from one JSON sample and renders it as
// Go source.
package schema

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/tidwall/gjson"

	"github.com/ukaji3/xl2json-go/pkg/xl2json/models"
)

// Infer builds the model of the first record in sample, which is either a
// single object or an array of objects. A blank sample yields nil with no
// error. Keys keep their document order; a repeated key keeps its first
// occurrence. A key no struct tag can carry is rejected with
// ErrInvalidSample.
func Infer(sample, name string) (*models.SchemaModel, error) {
	if strings.TrimSpace(sample) == "" {
		return nil, nil
	}
	if !gjson.Valid(sample) {
		return nil, fmt.Errorf("%w: malformed JSON", models.ErrInvalidSample)
	}

	record := gjson.Parse(sample)
	if record.IsArray() {
		items := record.Array()
		if len(items) == 0 {
			return &models.SchemaModel{Name: name}, nil
		}
		record = items[0]
	}
	if !record.IsObject() {
		return nil, fmt.Errorf("%w: expected an object, got %s", models.ErrInvalidSample, record.Type)
	}

	m := &models.SchemaModel{Name: name}
	seen := make(map[string]bool)
	names := make(map[string]int)
	var err error
	record.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if seen[k] {
			return true
		}
		seen[k] = true
		if !taggable(k) {
			err = fmt.Errorf("%w: key %q cannot be named in a struct tag", models.ErrInvalidSample, k)
			return false
		}

		typ, nullable := fieldType(value)
		m.Fields = append(m.Fields, models.SchemaField{
			Key:      k,
			GoName:   uniqueName(identifier(k, "Field"), names),
			Type:     typ,
			Nullable: nullable,
		})
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func fieldType(v gjson.Result) (models.FieldType, bool) {
	switch v.Type {
	case gjson.Null:
		return models.TypeAny, true
	case gjson.True, gjson.False:
		return models.TypeBoolean, false
	case gjson.Number:
		if !strings.ContainsAny(v.Raw, ".eE") && v.Num == math.Trunc(v.Num) {
			return models.TypeInteger, false
		}
		return models.TypeNumber, false
	case gjson.String:
		if _, err := time.Parse(time.RFC3339, v.Str); err == nil {
			return models.TypeDateTime, false
		}
		return models.TypeString, false
	}
	if v.IsArray() {
		return models.TypeArray, false
	}
	return models.TypeObject, false
}

// taggable reports whether encoding/json can use key as a struct tag name.
// Empty keys and keys holding quotes, commas, backslashes or control
// characters are not.
func taggable(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("!#$%&()*+-./:;<=>?@[]^_{|}~ ", r) {
			return false
		}
	}
	return true
}

// uniqueName appends a counter to names already handed out.
func uniqueName(name string, used map[string]int) string {
	used[name]++
	if n := used[name]; n > 1 {
		return fmt.Sprintf("%s%d", name, n)
	}
	return name
}
