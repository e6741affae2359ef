package parse_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/cli/commands/parse"
	"github.com/dcmtools/dcmquery/dicom"
	"github.com/stretchr/testify/assert"
)

func TestExpandKeys(t *testing.T) {
	t.Parallel()

	catalog := dicom.DefaultCatalog()
	catalog.Add(dicom.Entry{Keyword: "AcmeScore", Tag: dicom.NewTag(0x0009, 0x1001), VR: dicom.DS, Creator: "ACME 1.0"})

	testCases := []struct {
		key      string
		expected string
	}{
		{"PatientName=Smith*", "00100010=Smith*"},
		{"patientname", "00100010"},
		{"Modality:CS=CT", "00080060:CS=CT"},
		{"  PatientID =1", "00100020 =1"},
		{"AcmeScore=4.5", "[ACME 1.0]00091001=4.5"},
		{"00100010=Smith", "00100010=Smith"},
		{"[OTHER]AcmeScore", "[OTHER]AcmeScore"},
		{"NoSuchKeyword=1", "NoSuchKeyword=1"},
		{"", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.key, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, []string{testCase.expected}, parse.ExpandKeys(catalog, []string{testCase.key}))
		})
	}
}
