package dicom

import "maps"

// PrivateResolver maps a private tag written with a creator name to the tag it occupies once the
// creator's element block is known.
type PrivateResolver interface {
	ResolvePrivateTag(creator string, tag Tag) Tag
}

const (
	firstPrivateBlock = 0x10
	lastPrivateBlock  = 0xFF
)

// PrivateBlocks reserves private element blocks as creators are encountered, the same way a data set
// being written would, and answers dictionary lookups for the tags inside those blocks.
// A PrivateBlocks is meant to live for one parse.
type PrivateBlocks struct {
	catalog *Catalog
	// creators maps a creator element (gggg,00bb) to the creator that reserved block bb.
	creators map[Tag]string
}

var (
	_ Dictionary      = (*PrivateBlocks)(nil)
	_ PrivateResolver = (*PrivateBlocks)(nil)
)

// NewPrivateBlocks returns an allocator with no reservations that looks attributes up in catalog.
func NewPrivateBlocks(catalog *Catalog) *PrivateBlocks {
	return &PrivateBlocks{
		catalog:  catalog,
		creators: make(map[Tag]string),
	}
}

// ResolvePrivateTag implements PrivateResolver. Tags outside private data elements (even groups, or
// elements below 0x1000) are returned unchanged, as are tags of a group whose blocks are exhausted.
func (blocks *PrivateBlocks) ResolvePrivateTag(creator string, tag Tag) Tag {
	if creator == "" || !tag.IsPrivate() || tag.Element < 0x1000 {
		return tag
	}

	var free Tag

	for block := uint16(firstPrivateBlock); block <= lastPrivateBlock; block++ {
		creatorTag := NewTag(tag.Group, block)

		owner, reserved := blocks.creators[creatorTag]
		if reserved && owner == creator {
			return blockTag(tag, block)
		}

		if !reserved && free.IsZero() {
			free = creatorTag
		}
	}

	if free.IsZero() {
		return tag
	}

	blocks.creators[free] = creator

	return blockTag(tag, free.Element)
}

// LookupVR implements Dictionary. Tags inside a reserved block are looked up in the private entries
// of the block's creator, everything else in the standard entries.
func (blocks *PrivateBlocks) LookupVR(tag Tag) VR {
	if tag.IsPrivate() && tag.Element >= 0x1000 {
		if creator, ok := blocks.creators[NewTag(tag.Group, tag.Element>>8)]; ok {
			return blocks.catalog.LookupPrivateVR(creator, tag)
		}
	}

	return blocks.catalog.LookupVR(tag)
}

// Creators returns the reservations made so far, keyed by creator element.
func (blocks *PrivateBlocks) Creators() map[Tag]string {
	return maps.Clone(blocks.creators)
}

func blockTag(tag Tag, block uint16) Tag {
	return NewTag(tag.Group, block<<8|tag.Element&0x00FF)
}
