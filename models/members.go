package models

// Member is the loose roster entity used by the sidebar role switcher and
// the member listing. Records are free-form documents with only the id
// guaranteed; the users collection, not this one, drives dashboard stats.
type Member map[string]interface{}

// ID returns the member's id, or the empty string if unset.
func (m Member) ID() string {
	id, _ := m["id"].(string)
	return id
}

// Field returns the named field as a string, or the empty string when the
// field is absent or not a string. Absence and empty are equivalent here.
func (m Member) Field(name string) string {
	v, _ := m[name].(string)
	return v
}

// Clone returns a shallow copy so callers can merge fields without mutating
// stored state.
func (m Member) Clone() Member {
	out := make(Member, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
