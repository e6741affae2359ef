// Package dicom holds the DICOM data model used to describe a query: attribute tags, value representations,
// attribute values, the attribute dictionary and private creator resolution.
package dicom

import (
	"fmt"
	"strconv"
)

// Tag identifies a DICOM attribute by its (group, element) pair.
type Tag struct {
	Group   uint16
	Element uint16
}

// NewTag returns the tag for the given group and element.
func NewTag(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// TagFromKey splits a 32-bit key into group (high half) and element (low half).
func TagFromKey(key uint32) Tag {
	return Tag{Group: uint16(key >> 16), Element: uint16(key & 0xFFFF)}
}

// ParseTag parses exactly eight hexadecimal digits, e.g. "00100010".
// Anything else yields the zero tag and false.
func ParseTag(text string) (Tag, bool) {
	if len(text) != 8 {
		return Tag{}, false
	}

	key, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return Tag{}, false
	}

	return TagFromKey(uint32(key)), true
}

// Key returns group<<16 | element.
func (tag Tag) Key() uint32 {
	return uint32(tag.Group)<<16 | uint32(tag.Element)
}

// IsZero returns true for the (0000,0000) tag.
func (tag Tag) IsZero() bool {
	return tag.Key() == 0
}

// IsPrivate returns true if the tag belongs to an odd, i.e. private, group.
func (tag Tag) IsPrivate() bool {
	return tag.Group&1 == 1
}

// IsPrivateCreator returns true for the elements (gggg,0010)-(gggg,00FF) of a private group,
// which hold the creator names that reserve element blocks.
func (tag Tag) IsPrivateCreator() bool {
	return tag.IsPrivate() && tag.Element >= 0x0010 && tag.Element <= 0x00FF
}

// Hex returns the eight-digit form used in query files, e.g. "00100010".
func (tag Tag) Hex() string {
	return fmt.Sprintf("%04X%04X", tag.Group, tag.Element)
}

// String returns the conventional "(gggg,eeee)" form.
func (tag Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", tag.Group, tag.Element)
}

// Compare orders tags by key, as used for data set ordering.
func (tag Tag) Compare(other Tag) int {
	switch a, b := tag.Key(), other.Key(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// MarshalText implements encoding.TextMarshaler using the eight-digit form.
func (tag Tag) MarshalText() ([]byte, error) {
	return []byte(tag.Hex()), nil
}
