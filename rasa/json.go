package rasa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// member is a single property of a JSON object, kept in its raw form.
type member struct {
	key   string
	value json.RawMessage
}

// members are the properties of an object that this package doesn't
// interpret, in the order they appeared in the source. They are written
// back verbatim after the properties we do understand.
type members []member

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// decodeObject splits a JSON object into its properties, preserving their
// order.
func decodeObject(data []byte) (members, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("expected JSON object")
	}
	var ret members
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected JSON object key")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		ret = append(ret, member{key, value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON object")
	}
	return ret, nil
}

// marshalValue is json.Marshal without the escaping of HTML-significant
// characters, which would otherwise turn "&" in training phrases into
// "\u0026" in the file.
func marshalValue(v interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeObject produces a JSON object with the given known properties, in
// the given order, followed by the extra properties.
func encodeObject(known []member, extra members) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	all := make([]member, 0, len(known)+len(extra))
	all = append(all, known...)
	all = append(all, extra...)
	for i, m := range all {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalValue(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// knownMember marshals a property value that this package interprets.
func knownMember(key string, v interface{}) (member, error) {
	value, err := marshalValue(v)
	if err != nil {
		return member{}, fmt.Errorf("%s: %w", key, err)
	}
	return member{key, value}, nil
}

// knownMembers is knownMember for several properties at once, stopping at
// the first error.
func knownMembers(keysAndValues ...interface{}) ([]member, error) {
	ret := make([]member, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		m, err := knownMember(keysAndValues[i].(string), keysAndValues[i+1])
		if err != nil {
			return nil, err
		}
		ret = append(ret, m)
	}
	return ret, nil
}
