package dicom

// VR is a two-character value representation code. The zero VR is invalid.
type VR string

// Value representations defined by DICOM PS3.5, plus the OX and XS placeholders used by dictionaries
// for attributes whose VR depends on context.
const (
	AE VR = "AE"
	AS VR = "AS"
	AT VR = "AT"
	CS VR = "CS"
	DA VR = "DA"
	DS VR = "DS"
	DT VR = "DT"
	FD VR = "FD"
	FL VR = "FL"
	IS VR = "IS"
	LO VR = "LO"
	LT VR = "LT"
	OB VR = "OB"
	OD VR = "OD"
	OF VR = "OF"
	OL VR = "OL"
	OV VR = "OV"
	OW VR = "OW"
	PN VR = "PN"
	SH VR = "SH"
	SL VR = "SL"
	SQ VR = "SQ"
	SS VR = "SS"
	ST VR = "ST"
	SV VR = "SV"
	TM VR = "TM"
	UC VR = "UC"
	UI VR = "UI"
	UL VR = "UL"
	UN VR = "UN"
	UR VR = "UR"
	US VR = "US"
	UT VR = "UT"
	UV VR = "UV"

	// OX stands for OB or OW, e.g. pixel data.
	OX VR = "OX"
	// XS stands for US or SS, e.g. pixel value attributes.
	XS VR = "XS"
)

var validVRs = map[VR]struct{}{
	AE: {}, AS: {}, AT: {}, CS: {}, DA: {}, DS: {}, DT: {}, FD: {}, FL: {}, IS: {},
	LO: {}, LT: {}, OB: {}, OD: {}, OF: {}, OL: {}, OV: {}, OW: {}, PN: {}, SH: {},
	SL: {}, SQ: {}, SS: {}, ST: {}, SV: {}, TM: {}, UC: {}, UI: {}, UL: {}, UN: {},
	UR: {}, US: {}, UT: {}, UV: {}, OX: {}, XS: {},
}

// families lists the concrete members of each ambiguous VR.
var families = map[VR][2]VR{
	OX: {OB, OW},
	XS: {US, SS},
}

// IsValid reports whether vr is one of the known codes, placeholders included.
func (vr VR) IsValid() bool {
	_, ok := validVRs[vr]
	return ok
}

// IsAmbiguous reports whether vr is a placeholder for a family of concrete VRs.
func (vr VR) IsAmbiguous() bool {
	_, ok := families[vr]
	return ok
}

// IsUnknown reports whether vr is UN.
func (vr VR) IsUnknown() bool {
	return vr == UN
}

// IsConcrete reports whether vr can be used to encode a value: valid, not a placeholder and not UN.
func (vr VR) IsConcrete() bool {
	return vr.IsValid() && !vr.IsAmbiguous() && !vr.IsUnknown()
}

// Accepts reports whether an explicitly given VR agrees with vr taken from a dictionary.
// Besides equality, the concrete members of an ambiguous dictionary VR are accepted.
func (vr VR) Accepts(explicit VR) bool {
	if vr == explicit {
		return true
	}

	members, ok := families[vr]

	return ok && (explicit == members[0] || explicit == members[1])
}

func (vr VR) String() string {
	return string(vr)
}
