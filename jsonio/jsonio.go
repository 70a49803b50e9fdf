// Package jsonio round-trips values through JSON text.
//
// Serialize and Deserialize are thin wrappers over encoding/json with one
// twist: Deserialize takes a prototype value and overlays parsed data on a
// copy of it, so the result keeps the prototype's methods and any fields the
// text does not mention.
package jsonio

import "encoding/json"

// Serialize renders v as JSON text. For values containing only plain data
// (no channels, funcs or cycles) it is the exact inverse of Deserialize.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize parses text and overlays the parsed fields on a copy of proto:
// fields present in the text overwrite the copy, fields absent from the text
// keep their prototype values, and the result has every method of T. The
// prototype itself is never modified (note that a prototype of pointer or
// reference type shares its underlying data with the result).
//
// Malformed text is reported with the encoding/json parse error as is.
func Deserialize[T any](proto T, text string) (T, error) {
	out := proto
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return proto, err
	}
	return out, nil
}
