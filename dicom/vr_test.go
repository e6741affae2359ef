package dicom_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/stretchr/testify/assert"
)

func TestVRPredicates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		vr        dicom.VR
		valid     bool
		ambiguous bool
		concrete  bool
	}{
		{dicom.PN, true, false, true},
		{dicom.OW, true, false, true},
		{dicom.OX, true, true, false},
		{dicom.XS, true, true, false},
		{dicom.UN, true, false, false},
		{"ZZ", false, false, false},
		{"pn", false, false, false},
		{"", false, false, false},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.valid, testCase.vr.IsValid(), "IsValid(%q)", testCase.vr)
		assert.Equal(t, testCase.ambiguous, testCase.vr.IsAmbiguous(), "IsAmbiguous(%q)", testCase.vr)
		assert.Equal(t, testCase.concrete, testCase.vr.IsConcrete(), "IsConcrete(%q)", testCase.vr)
	}
}

func TestVRAccepts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		dict     dicom.VR
		explicit dicom.VR
		expected bool
	}{
		{dicom.CS, dicom.CS, true},
		{dicom.CS, dicom.LO, false},
		{dicom.OX, dicom.OB, true},
		{dicom.OX, dicom.OW, true},
		{dicom.OX, dicom.OF, false},
		{dicom.XS, dicom.US, true},
		{dicom.XS, dicom.SS, true},
		{dicom.XS, dicom.SL, false},
		{dicom.OB, dicom.OX, false},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, testCase.dict.Accepts(testCase.explicit), "%s accepts %s", testCase.dict, testCase.explicit)
	}
}
