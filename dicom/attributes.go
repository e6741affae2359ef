package dicom

import (
	"iter"
	"maps"
	"slices"
)

// AttributeSet maps tags to values. Each tag holds at most one value, a later Set overwrites.
// Iteration is always in ascending tag order, as in an encoded data set.
type AttributeSet struct {
	values map[Tag]Value
}

// NewAttributeSet returns an empty set.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{values: make(map[Tag]Value)}
}

// Set stores value under tag, replacing any previous value.
func (set *AttributeSet) Set(tag Tag, value Value) {
	set.values[tag] = value
}

// Get returns the value stored under tag.
func (set *AttributeSet) Get(tag Tag) (Value, bool) {
	value, ok := set.values[tag]
	return value, ok
}

// Has reports whether tag has a value.
func (set *AttributeSet) Has(tag Tag) bool {
	_, ok := set.values[tag]
	return ok
}

// Len returns the number of attributes.
func (set *AttributeSet) Len() int {
	return len(set.values)
}

// Tags returns the tags in ascending order.
func (set *AttributeSet) Tags() []Tag {
	return slices.SortedFunc(maps.Keys(set.values), Tag.Compare)
}

// All iterates over the attributes in ascending tag order.
func (set *AttributeSet) All() iter.Seq2[Tag, Value] {
	return func(yield func(Tag, Value) bool) {
		for _, tag := range set.Tags() {
			if !yield(tag, set.values[tag]) {
				return
			}
		}
	}
}
