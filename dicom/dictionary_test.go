package dicom_test

import (
	"testing"

	"github.com/dcmtools/dcmquery/dicom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := dicom.DefaultCatalog()

	assert.Equal(t, dicom.PN, catalog.LookupVR(dicom.NewTag(0x0010, 0x0010)))
	assert.Equal(t, dicom.CS, catalog.LookupVR(dicom.NewTag(0x0008, 0x0060)))
	assert.Equal(t, dicom.OX, catalog.LookupVR(dicom.NewTag(0x7FE0, 0x0010)))
	assert.Equal(t, dicom.XS, catalog.LookupVR(dicom.NewTag(0x0028, 0x0106)))
	assert.False(t, catalog.LookupVR(dicom.NewTag(0x0009, 0x0010)).IsValid())
	assert.False(t, catalog.LookupVR(dicom.Tag{}).IsValid())

	entry, ok := catalog.LookupKeyword("patientid")
	require.True(t, ok)
	assert.Equal(t, dicom.NewTag(0x0010, 0x0020), entry.Tag)

	// every call starts from a fresh copy
	catalog.Add(dicom.Entry{Keyword: "PatientName", Tag: dicom.NewTag(0x0010, 0x0010), VR: dicom.LO})
	assert.Equal(t, dicom.PN, dicom.DefaultCatalog().LookupVR(dicom.NewTag(0x0010, 0x0010)))
}

func TestCatalogEntriesOrder(t *testing.T) {
	t.Parallel()

	catalog := dicom.NewCatalog()
	catalog.Add(dicom.Entry{Keyword: "AcmeScore", Tag: dicom.NewTag(0x0009, 0x1001), VR: dicom.DS, Creator: "ACME 1.0"})
	catalog.Add(dicom.Entry{Keyword: "Modality", Tag: dicom.NewTag(0x0008, 0x0060), VR: dicom.CS})
	catalog.Add(dicom.Entry{Keyword: "PatientName", Tag: dicom.NewTag(0x0010, 0x0010), VR: dicom.PN})

	entries := catalog.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Modality", entries[0].Keyword)
	assert.Equal(t, "PatientName", entries[1].Keyword)
	assert.Equal(t, "AcmeScore", entries[2].Keyword)

	assert.Equal(t, dicom.DS, catalog.LookupPrivateVR("ACME 1.0", dicom.NewTag(0x0009, 0x1201)))
	assert.False(t, catalog.LookupPrivateVR("OTHER", dicom.NewTag(0x0009, 0x1001)).IsValid())
	assert.False(t, catalog.LookupVR(dicom.NewTag(0x0009, 0x1001)).IsValid())
}
