package shared

import "encoding/json"

// Field is an optional request value that remembers whether its key appeared
// in the JSON body at all. Sparse-patch endpoints need the distinction:
// a key that is omitted leaves the stored value alone, while a key that is
// present (even as null) participates in the update.
type Field struct {
	Set   bool
	Value any
}

// UnmarshalJSON marks the field as present. A JSON null yields Set=true with
// a nil Value.
func (f *Field) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON round-trips the raw value; an unset field encodes as null.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// String returns the value as a string when it is one.
func (f Field) String() (string, bool) {
	s, ok := f.Value.(string)
	return s, ok
}
