package models

// ValueType is the closed-set discriminator describing the shape of a
// credential value. The underlying value is the canonical wire token.
type ValueType string

const (
	// ValueTypePassword marks a credential holding a single string value.
	ValueTypePassword ValueType = "password"

	// ValueTypeJSON marks a credential holding a key/value document.
	ValueTypeJSON ValueType = "json"
)

// Type returns the canonical token of the value type.
func (v ValueType) Type() string {
	return string(v)
}
