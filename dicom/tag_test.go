package dicom_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text     string
		expected dicom.Tag
		ok       bool
	}{
		{"00100010", dicom.NewTag(0x0010, 0x0010), true},
		{"7fe00010", dicom.NewTag(0x7FE0, 0x0010), true},
		{"7FE00010", dicom.NewTag(0x7FE0, 0x0010), true},
		{"0010001", dicom.Tag{}, false},
		{"001000100", dicom.Tag{}, false},
		{"0010001G", dicom.Tag{}, false},
		{"PatientN", dicom.Tag{}, false},
		{"", dicom.Tag{}, false},
	}

	for _, testCase := range testCases {
		tag, ok := dicom.ParseTag(testCase.text)
		assert.Equal(t, testCase.ok, ok, testCase.text)
		assert.Equal(t, testCase.expected, tag, testCase.text)
	}
}

func TestTagKeyRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		group := rapid.Uint16().Draw(t, "group")
		element := rapid.Uint16().Draw(t, "element")

		tag := dicom.NewTag(group, element)

		if got := dicom.TagFromKey(tag.Key()); got != tag {
			t.Fatalf("TagFromKey(%08X) = %v, want %v", tag.Key(), got, tag)
		}

		parsed, ok := dicom.ParseTag(tag.Hex())
		if !ok || parsed != tag {
			t.Fatalf("ParseTag(%q) = %v, %v", tag.Hex(), parsed, ok)
		}
	})
}

func TestTagPredicates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(0010,0010)", dicom.NewTag(0x0010, 0x0010).String())
	assert.True(t, dicom.NewTag(0x0009, 0x0010).IsPrivateCreator())
	assert.True(t, dicom.NewTag(0x0009, 0x1001).IsPrivate())
	assert.False(t, dicom.NewTag(0x0009, 0x1001).IsPrivateCreator())
	assert.False(t, dicom.NewTag(0x0010, 0x0010).IsPrivate())
	assert.True(t, dicom.Tag{}.IsZero())
	assert.Equal(t, -1, dicom.NewTag(0x0008, 0xFFFF).Compare(dicom.NewTag(0x0010, 0x0000)))
}
