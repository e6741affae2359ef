package dicom

// builtinEntries are the attributes commonly used in patient, study, series and instance level queries.
var builtinEntries = []Entry{
	{Keyword: "SpecificCharacterSet", Tag: NewTag(0x0008, 0x0005), VR: CS},
	{Keyword: "SOPClassUID", Tag: NewTag(0x0008, 0x0016), VR: UI},
	{Keyword: "SOPInstanceUID", Tag: NewTag(0x0008, 0x0018), VR: UI},
	{Keyword: "StudyDate", Tag: NewTag(0x0008, 0x0020), VR: DA},
	{Keyword: "SeriesDate", Tag: NewTag(0x0008, 0x0021), VR: DA},
	{Keyword: "AcquisitionDate", Tag: NewTag(0x0008, 0x0022), VR: DA},
	{Keyword: "ContentDate", Tag: NewTag(0x0008, 0x0023), VR: DA},
	{Keyword: "StudyTime", Tag: NewTag(0x0008, 0x0030), VR: TM},
	{Keyword: "SeriesTime", Tag: NewTag(0x0008, 0x0031), VR: TM},
	{Keyword: "ContentTime", Tag: NewTag(0x0008, 0x0033), VR: TM},
	{Keyword: "AccessionNumber", Tag: NewTag(0x0008, 0x0050), VR: SH},
	{Keyword: "QueryRetrieveLevel", Tag: NewTag(0x0008, 0x0052), VR: CS},
	{Keyword: "RetrieveAETitle", Tag: NewTag(0x0008, 0x0054), VR: AE},
	{Keyword: "InstanceAvailability", Tag: NewTag(0x0008, 0x0056), VR: CS},
	{Keyword: "Modality", Tag: NewTag(0x0008, 0x0060), VR: CS},
	{Keyword: "ModalitiesInStudy", Tag: NewTag(0x0008, 0x0061), VR: CS},
	{Keyword: "SOPClassesInStudy", Tag: NewTag(0x0008, 0x0062), VR: UI},
	{Keyword: "Manufacturer", Tag: NewTag(0x0008, 0x0070), VR: LO},
	{Keyword: "InstitutionName", Tag: NewTag(0x0008, 0x0080), VR: LO},
	{Keyword: "ReferringPhysicianName", Tag: NewTag(0x0008, 0x0090), VR: PN},
	{Keyword: "TimezoneOffsetFromUTC", Tag: NewTag(0x0008, 0x0201), VR: SH},
	{Keyword: "StudyDescription", Tag: NewTag(0x0008, 0x1030), VR: LO},
	{Keyword: "SeriesDescription", Tag: NewTag(0x0008, 0x103E), VR: LO},
	{Keyword: "PerformingPhysicianName", Tag: NewTag(0x0008, 0x1050), VR: PN},
	{Keyword: "ManufacturerModelName", Tag: NewTag(0x0008, 0x1090), VR: LO},
	{Keyword: "PatientName", Tag: NewTag(0x0010, 0x0010), VR: PN},
	{Keyword: "PatientID", Tag: NewTag(0x0010, 0x0020), VR: LO},
	{Keyword: "IssuerOfPatientID", Tag: NewTag(0x0010, 0x0021), VR: LO},
	{Keyword: "PatientBirthDate", Tag: NewTag(0x0010, 0x0030), VR: DA},
	{Keyword: "PatientSex", Tag: NewTag(0x0010, 0x0040), VR: CS},
	{Keyword: "PatientAge", Tag: NewTag(0x0010, 0x1010), VR: AS},
	{Keyword: "PatientSize", Tag: NewTag(0x0010, 0x1020), VR: DS},
	{Keyword: "PatientWeight", Tag: NewTag(0x0010, 0x1030), VR: DS},
	{Keyword: "BodyPartExamined", Tag: NewTag(0x0018, 0x0015), VR: CS},
	{Keyword: "SliceThickness", Tag: NewTag(0x0018, 0x0050), VR: DS},
	{Keyword: "ProtocolName", Tag: NewTag(0x0018, 0x1030), VR: LO},
	{Keyword: "StudyInstanceUID", Tag: NewTag(0x0020, 0x000D), VR: UI},
	{Keyword: "SeriesInstanceUID", Tag: NewTag(0x0020, 0x000E), VR: UI},
	{Keyword: "StudyID", Tag: NewTag(0x0020, 0x0010), VR: SH},
	{Keyword: "SeriesNumber", Tag: NewTag(0x0020, 0x0011), VR: IS},
	{Keyword: "AcquisitionNumber", Tag: NewTag(0x0020, 0x0012), VR: IS},
	{Keyword: "InstanceNumber", Tag: NewTag(0x0020, 0x0013), VR: IS},
	{Keyword: "ImagePositionPatient", Tag: NewTag(0x0020, 0x0032), VR: DS},
	{Keyword: "ImageOrientationPatient", Tag: NewTag(0x0020, 0x0037), VR: DS},
	{Keyword: "FrameOfReferenceUID", Tag: NewTag(0x0020, 0x0052), VR: UI},
	{Keyword: "NumberOfStudyRelatedSeries", Tag: NewTag(0x0020, 0x1206), VR: IS},
	{Keyword: "NumberOfStudyRelatedInstances", Tag: NewTag(0x0020, 0x1208), VR: IS},
	{Keyword: "NumberOfSeriesRelatedInstances", Tag: NewTag(0x0020, 0x1209), VR: IS},
	{Keyword: "SamplesPerPixel", Tag: NewTag(0x0028, 0x0002), VR: US},
	{Keyword: "PhotometricInterpretation", Tag: NewTag(0x0028, 0x0004), VR: CS},
	{Keyword: "NumberOfFrames", Tag: NewTag(0x0028, 0x0008), VR: IS},
	{Keyword: "Rows", Tag: NewTag(0x0028, 0x0010), VR: US},
	{Keyword: "Columns", Tag: NewTag(0x0028, 0x0011), VR: US},
	{Keyword: "PixelSpacing", Tag: NewTag(0x0028, 0x0030), VR: DS},
	{Keyword: "BitsAllocated", Tag: NewTag(0x0028, 0x0100), VR: US},
	{Keyword: "BitsStored", Tag: NewTag(0x0028, 0x0101), VR: US},
	{Keyword: "PixelRepresentation", Tag: NewTag(0x0028, 0x0103), VR: US},
	{Keyword: "SmallestImagePixelValue", Tag: NewTag(0x0028, 0x0106), VR: XS},
	{Keyword: "LargestImagePixelValue", Tag: NewTag(0x0028, 0x0107), VR: XS},
	{Keyword: "WindowCenter", Tag: NewTag(0x0028, 0x1050), VR: DS},
	{Keyword: "WindowWidth", Tag: NewTag(0x0028, 0x1051), VR: DS},
	{Keyword: "RedPaletteColorLookupTableDescriptor", Tag: NewTag(0x0028, 0x1101), VR: XS},
	{Keyword: "RedPaletteColorLookupTableData", Tag: NewTag(0x0028, 0x1201), VR: OW},
	{Keyword: "RequestedProcedureDescription", Tag: NewTag(0x0032, 0x1060), VR: LO},
	{Keyword: "ScheduledProcedureStepSequence", Tag: NewTag(0x0040, 0x0100), VR: SQ},
	{Keyword: "PerformedProcedureStepStartDate", Tag: NewTag(0x0040, 0x0244), VR: DA},
	{Keyword: "NumberOfSlices", Tag: NewTag(0x0054, 0x0081), VR: US},
	{Keyword: "StorageMediaFileSetUID", Tag: NewTag(0x0088, 0x0140), VR: UI},
	{Keyword: "PixelData", Tag: NewTag(0x7FE0, 0x0010), VR: OX},
}
