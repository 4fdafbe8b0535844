package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of a JSON object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a generic JSON value that preserves object member order and
// the original textual form of numbers. encoding/json's map decoding
// loses both, so documents are decoded token by token instead.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  json.Number
	Str     string
	Elems   []*Value // KindArray
	Members []Member // KindObject
}

// ParseValue parses a single JSON document from r. Trailing data after
// the document is an error.
func ParseValue(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON document")
	}
	return v, nil
}

// ParseValueBytes parses a single JSON document from data.
func ParseValueBytes(data []byte) (*Value, error) {
	return ParseValue(bytes.NewReader(data))
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("unexpected end of JSON document")
	}
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return &Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return &Value{Kind: KindNumber, Number: t}, nil
	case bool:
		return &Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return &Value{Kind: KindNull}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := &Value{Kind: KindObject}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, Member{Key: key, Value: val})
	}
	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: KindArray}
	for dec.More() {
		el, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, el)
	}
	// Consume the closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// Get returns the value of the first member with the given key.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindObject {
		return nil, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether the object has a member with the given key.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Text returns a plain-text rendering of the value for use in
// filenames and console output. Scalars render as their literal text,
// composite values as compact JSON.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Number.String()
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return ""
	default:
		data, err := v.Marshal()
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Marshal encodes the value as compact JSON without escaping HTML or
// non-ASCII characters.
func (v *Value) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, "", ""); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent encodes the value as pretty-printed JSON with a
// two-space indent and a trailing newline. Non-ASCII characters are
// written literally rather than as escape sequences.
func (v *Value) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer, prefix, indent string) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.Number.String())
	case KindString:
		writeJSONString(buf, v.Str)
	case KindArray:
		if len(v.Elems) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		inner := prefix + indent
		for i, el := range v.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if indent != "" {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			if err := el.encode(buf, inner, indent); err != nil {
				return err
			}
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte(']')
	case KindObject:
		if len(v.Members) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteByte('{')
		inner := prefix + indent
		for i, m := range v.Members {
			if i > 0 {
				buf.WriteByte(',')
			}
			if indent != "" {
				buf.WriteByte('\n')
				buf.WriteString(inner)
			}
			writeJSONString(buf, m.Key)
			if indent != "" {
				buf.WriteString(": ")
			} else {
				buf.WriteByte(':')
			}
			if err := m.Value.encode(buf, inner, indent); err != nil {
				return err
			}
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(prefix)
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of kind %d", v.Kind)
	}
	return nil
}

// writeJSONString writes s as a JSON string literal without HTML
// escaping, so non-ASCII text survives round trips byte for byte.
func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	// Encode appends a newline; drop it
	buf.Truncate(buf.Len() - 1)
}
