package sheets

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind declares how a schema field's cell text is parsed and serialized.
type Kind int

const (
	String Kind = iota
	Int
	Float
	JSONList
)

type Field struct {
	Name string
	Kind Kind
}

// LegacyVersion records the field order that was in force when rows of at most
// Width cells were written. Columns are only ever added to a schema, so the
// raw width of a row identifies which layout produced it.
type LegacyVersion struct {
	Width  int
	Fields []Field
}

// Schema is an ordered field list for one logical table, plus the column-shift
// table for rows written under earlier layouts.
type Schema struct {
	Name   string
	Fields []Field
	// Legacy is sorted narrowest first. A row no wider than a version's Width
	// is decoded with that version's field order; fields the version lacks
	// take their defaults.
	Legacy []LegacyVersion
}

func (s Schema) Width() int { return len(s.Fields) }

func (s Schema) Headers() []string {
	out := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		out[i] = f.Name
	}
	return out
}

// Record is a decoded row keyed by field name. Values are string, *int,
// float64 or []string depending on the field's Kind.
type Record map[string]any

func (r Record) Str(name string) string {
	if v, ok := r[name].(string); ok {
		return v
	}
	return ""
}

func (r Record) Int(name string) *int {
	if v, ok := r[name].(*int); ok {
		return v
	}
	return nil
}

func (r Record) Float(name string) float64 {
	if v, ok := r[name].(float64); ok {
		return v
	}
	return 0
}

func (r Record) List(name string) []string {
	if v, ok := r[name].([]string); ok {
		return v
	}
	return nil
}

// DecodeRow maps a raw row onto the schema. It never fails: missing cells,
// non-numeric numbers and malformed JSON all degrade to the field's default
// so one corrupt row cannot break listing of the rest.
//
// A caveat of width-based legacy detection: a current-layout row whose
// trailing cells are all blank comes back from the store trimmed and is then
// read as legacy. Rows written through this layer always carry a trailing
// timestamp, which keeps them at full width.
func (s Schema) DecodeRow(row []string) Record {
	fields := s.Fields
	if len(row) < len(s.Fields) {
		for _, v := range s.Legacy {
			if len(row) <= v.Width {
				fields = v.Fields
				break
			}
		}
	}

	rec := make(Record, len(s.Fields))
	for i, f := range fields {
		raw := ""
		if i < len(row) {
			raw = row[i]
		}
		rec[f.Name] = decodeCell(f.Kind, raw)
	}
	// Fields absent from the legacy layout default.
	for _, f := range s.Fields {
		if _, ok := rec[f.Name]; !ok {
			rec[f.Name] = decodeCell(f.Kind, "")
		}
	}
	return rec
}

// EncodeRow is the inverse mapping, always at the current schema width.
func (s Schema) EncodeRow(rec Record) []string {
	row := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		row[i] = encodeCell(f.Kind, rec, f.Name)
	}
	return row
}

func decodeCell(k Kind, raw string) any {
	switch k {
	case Int:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return (*int)(nil)
		}
		return &n
	case Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return float64(0)
		}
		return f
	case JSONList:
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
			return []string{}
		}
		return list
	default:
		return raw
	}
}

func encodeCell(k Kind, rec Record, name string) string {
	switch k {
	case Int:
		if n := rec.Int(name); n != nil {
			return strconv.Itoa(*n)
		}
		return ""
	case Float:
		return strconv.FormatFloat(rec.Float(name), 'f', -1, 64)
	case JSONList:
		b, err := json.Marshal(rec.List(name))
		if err != nil || rec.List(name) == nil {
			return "[]"
		}
		return string(b)
	default:
		return rec.Str(name)
	}
}
