// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Answer is the backend's response to one question. Every field is optional;
// an answer may carry only a summary, only a table, or any combination.
type Answer struct {
	Summary string       `json:"summary,omitempty"`
	Table   []Record     `json:"table,omitempty"`
	Chart   []ChartPoint `json:"chartData,omitempty"`
}

// ChartPoint is one labeled value of the optional chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Record is one row of tabular data with the JSON object's key order
// preserved. The backend shapes tables per question, so column names are not
// known ahead of time; downstream rendering derives them from the first
// record's keys, which makes insertion order load-bearing. Values are decoded
// with json.Number so numbers render exactly as the backend sent them.
type Record struct {
	Keys   []string
	Values []any
}

// UnmarshalJSON decodes a JSON object through the token stream instead of a
// map, keeping the keys in wire order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record: expected object, got %v", tok)
	}

	r.Keys = nil
	r.Values = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record: expected string key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return err
		}
		r.Keys = append(r.Keys, key)
		r.Values = append(r.Values, val)
	}

	// closing '}'
	_, err = dec.Token()
	return err
}

// MarshalJSON writes the record back as an object in the preserved key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		var val any
		if i < len(r.Values) {
			val = r.Values[i]
		}
		v, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeValue reads one JSON value from the decoder. Scalars come back as
// string, json.Number, bool or nil; containers recurse, with nested objects
// kept as order-preserving Records.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	d, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch d {
	case '[':
		var arr []any
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		_, err := dec.Token() // ']'
		return arr, err
	case '{':
		var nested Record
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("record: expected string key, got %v", keyTok)
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			nested.Keys = append(nested.Keys, key)
			nested.Values = append(nested.Values, v)
		}
		_, err := dec.Token() // '}'
		return nested, err
	default:
		return nil, fmt.Errorf("record: unexpected delimiter %v", d)
	}
}
