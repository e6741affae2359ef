package dicom_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/stretchr/testify/assert"
)

func TestPrivateBlocksResolve(t *testing.T) {
	t.Parallel()

	blocks := dicom.NewPrivateBlocks(dicom.NewCatalog())

	assert.Equal(t, dicom.NewTag(0x0009, 0x1001), blocks.ResolvePrivateTag("ACME 1.0", dicom.NewTag(0x0009, 0x1001)))
	assert.Equal(t, dicom.NewTag(0x0009, 0x1002), blocks.ResolvePrivateTag("ACME 1.0", dicom.NewTag(0x0009, 0x1002)))
	assert.Equal(t, dicom.NewTag(0x0009, 0x1101), blocks.ResolvePrivateTag("OTHER", dicom.NewTag(0x0009, 0x1001)))
	assert.Equal(t, dicom.NewTag(0x0009, 0x1003), blocks.ResolvePrivateTag("ACME 1.0", dicom.NewTag(0x0009, 0x5503)))
	assert.Equal(t, dicom.NewTag(0x0011, 0x1001), blocks.ResolvePrivateTag("OTHER", dicom.NewTag(0x0011, 0x1001)))

	assert.Equal(t, map[dicom.Tag]string{
		dicom.NewTag(0x0009, 0x0010): "ACME 1.0",
		dicom.NewTag(0x0009, 0x0011): "OTHER",
		dicom.NewTag(0x0011, 0x0010): "OTHER",
	}, blocks.Creators())
}

func TestPrivateBlocksPassThrough(t *testing.T) {
	t.Parallel()

	blocks := dicom.NewPrivateBlocks(dicom.NewCatalog())

	testCases := []struct {
		creator string
		tag     dicom.Tag
	}{
		{"ACME 1.0", dicom.NewTag(0x0009, 0x0010)},
		{"ACME 1.0", dicom.NewTag(0x0010, 0x1001)},
		{"", dicom.NewTag(0x0009, 0x1001)},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.tag, blocks.ResolvePrivateTag(testCase.creator, testCase.tag))
	}

	assert.Empty(t, blocks.Creators())
}

func TestPrivateBlocksExhausted(t *testing.T) {
	t.Parallel()

	blocks := dicom.NewPrivateBlocks(dicom.NewCatalog())

	for i := range 0xF0 {
		blocks.ResolvePrivateTag(string(rune('A'+i)), dicom.NewTag(0x0009, 0x1001))
	}

	tag := dicom.NewTag(0x0009, 0x1001)
	assert.Equal(t, tag, blocks.ResolvePrivateTag("one too many", tag))
	assert.Len(t, blocks.Creators(), 0xF0)
}

func TestPrivateBlocksLookupVR(t *testing.T) {
	t.Parallel()

	catalog := dicom.DefaultCatalog()
	catalog.Add(dicom.Entry{Keyword: "AcmeScore", Tag: dicom.NewTag(0x0009, 0x1001), VR: dicom.DS, Creator: "ACME 1.0"})

	blocks := dicom.NewPrivateBlocks(catalog)
	blocks.ResolvePrivateTag("OTHER", dicom.NewTag(0x0009, 0x1001))
	resolved := blocks.ResolvePrivateTag("ACME 1.0", dicom.NewTag(0x0009, 0x1001))

	assert.Equal(t, dicom.NewTag(0x0009, 0x1101), resolved)
	assert.Equal(t, dicom.DS, blocks.LookupVR(resolved))
	assert.False(t, blocks.LookupVR(dicom.NewTag(0x0009, 0x1001)).IsValid())
	assert.False(t, blocks.LookupVR(dicom.NewTag(0x0009, 0x1201)).IsValid())
	assert.Equal(t, dicom.PN, blocks.LookupVR(dicom.NewTag(0x0010, 0x0010)))
}
