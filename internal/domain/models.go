package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Mutable member fields
const (
	FieldName  = "name"
	FieldEmail = "email"
)

// Member represents one record of the member collection
type Member struct {
	ID    string
	Name  string
	Email string
	Extra map[string]any // fields other than id/name/email, kept verbatim
}

// HasID reports whether the source record carried an id
func (m Member) HasID() bool {
	return m.ID != ""
}

// Values returns the string form of every field value, id first
func (m Member) Values() []string {
	values := make([]string, 0, 3+len(m.Extra))
	values = append(values, m.ID, m.Name, m.Email)
	for _, key := range m.ExtraKeys() {
		values = append(values, Stringify(m.Extra[key]))
	}
	return values
}

// ExtraKeys returns the extra field names in sorted order
func (m Member) ExtraKeys() []string {
	keys := make([]string, 0, len(m.Extra))
	for k := range m.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExtraString returns the string form of an extra field ("" if absent)
func (m Member) ExtraString(key string) string {
	v, ok := m.Extra[key]
	if !ok {
		return ""
	}
	return Stringify(v)
}

// UnmarshalJSON decodes a member object. The id may be a string or a number.
func (m *Member) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode member: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("member is null")
	}

	*m = Member{}
	for key, value := range raw {
		switch key {
		case "id":
			m.ID = Stringify(value)
		case FieldName:
			m.Name = Stringify(value)
		case FieldEmail:
			m.Email = Stringify(value)
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = value
		}
	}
	return nil
}

// MarshalJSON encodes the member back into a flat object
func (m Member) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3+len(m.Extra))
	for k, v := range m.Extra {
		out[k] = v
	}
	out["id"] = m.ID
	out[FieldName] = m.Name
	out[FieldEmail] = m.Email
	return json.Marshal(out)
}

// Clone returns a copy that shares no maps with m
func (m Member) Clone() Member {
	c := m
	if m.Extra != nil {
		c.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			c.Extra[k] = v
		}
	}
	return c
}

// Stringify renders a decoded JSON value the way the filter compares it
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64, float32, int, int64, int32:
		return fmt.Sprint(val)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(buf.String())
	}
}
