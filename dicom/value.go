package dicom

// Value is an attribute value: a VR and the raw payload. An empty payload is a wildcard,
// the attribute is returned but places no constraint on the match.
type Value struct {
	VR    VR     `json:"vr"`
	Bytes []byte `json:"-"`
}

// NewValue returns a value holding a copy of text.
func NewValue(vr VR, text string) Value {
	return Value{VR: vr, Bytes: []byte(text)}
}

// Wildcard returns a zero-length value of the given VR.
func Wildcard(vr VR) Value {
	return Value{VR: vr}
}

// IsWildcard reports whether the payload is empty.
func (value Value) IsWildcard() bool {
	return len(value.Bytes) == 0
}

// String returns the payload as text.
func (value Value) String() string {
	return string(value.Bytes)
}
