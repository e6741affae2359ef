// Package config loads dictionary extension files: HCL documents declaring standard and private attributes
// the built-in dictionary does not know.
package config

import (
	"github.com/dcmtools/dcmquery/config/hclparse"
	"github.com/dcmtools/dcmquery/dicom"
	"github.com/dcmtools/dcmquery/internal/errors"
	"github.com/hashicorp/go-version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
)

// DictionaryConfig is the content of a dictionary extension file.
//
//	required_version = ">= 1.0"
//
//	attribute "PatientName" {
//	  tag = "00100010"
//	  vr  = "PN"
//	}
//
//	private "ACME 1.0" {
//	  attribute "AcmeScore" {
//	    tag = "00091001"
//	    vr  = "DS"
//	  }
//	}
type DictionaryConfig struct {
	RequiredVersion *string            `hcl:"required_version,attr"`
	Attributes      []*AttributeConfig `hcl:"attribute,block"`
	Private         []*PrivateConfig   `hcl:"private,block"`

	entries []dicom.Entry
}

// AttributeConfig declares one attribute.
type AttributeConfig struct {
	Keyword string         `hcl:",label"`
	Tag     hcl.Expression `hcl:"tag,attr"`
	VR      hcl.Expression `hcl:"vr,attr"`
}

// PrivateConfig groups the attributes of one private creator.
type PrivateConfig struct {
	Creator    string             `hcl:",label"`
	Attributes []*AttributeConfig `hcl:"attribute,block"`
}

// ParseDictionaryFile reads and validates the dictionary extension file at path.
func ParseDictionaryFile(path string, opts ...hclparse.Option) (*DictionaryConfig, error) {
	file, err := hclparse.NewParser(opts...).ParseFromFile(path)
	if err != nil {
		return nil, err
	}

	return decodeDictionary(file)
}

// ParseDictionary validates content as if it was read from path; a `.json` path selects HCL-JSON syntax.
func ParseDictionary(content, path string, opts ...hclparse.Option) (*DictionaryConfig, error) {
	file, err := hclparse.NewParser(opts...).ParseFromString(content, path)
	if err != nil {
		return nil, err
	}

	return decodeDictionary(file)
}

func decodeDictionary(file *hclparse.File) (*DictionaryConfig, error) {
	cfg := &DictionaryConfig{}

	if err := file.HandleDiagnostics(gohcl.DecodeBody(file.Body, nil, cfg)); err != nil {
		return nil, err
	}

	for _, attr := range cfg.Attributes {
		entry, err := attr.entry(file, "")
		if err != nil {
			return nil, err
		}

		cfg.entries = append(cfg.entries, entry)
	}

	for _, private := range cfg.Private {
		for _, attr := range private.Attributes {
			entry, err := attr.entry(file, private.Creator)
			if err != nil {
				return nil, err
			}

			cfg.entries = append(cfg.entries, entry)
		}
	}

	return cfg, nil
}

func (attr *AttributeConfig) entry(file *hclparse.File, creator string) (dicom.Entry, error) {
	rawTag, err := file.StringValue(attr.Tag)
	if err != nil {
		return dicom.Entry{}, err
	}

	tagRange := attr.Tag.Range()

	tag, ok := dicom.ParseTag(rawTag)
	if !ok {
		return dicom.Entry{}, file.Invalid(&tagRange, "Invalid tag", "A tag is 8 hexadecimal digits, group then element, e.g. \"00100010\".")
	}

	if creator != "" && !tag.IsPrivate() {
		return dicom.Entry{}, file.Invalid(&tagRange, "Invalid private tag", "Attributes of a private block must have an odd group.")
	}

	rawVR, err := file.StringValue(attr.VR)
	if err != nil {
		return dicom.Entry{}, err
	}

	vr := dicom.VR(rawVR)
	if !vr.IsValid() {
		vrRange := attr.VR.Range()
		return dicom.Entry{}, file.Invalid(&vrRange, "Invalid VR", "The VR must be a two letter DICOM value representation, e.g. \"PN\".")
	}

	return dicom.Entry{Keyword: attr.Keyword, Tag: tag, VR: vr, Creator: creator}, nil
}

// Entries returns the declared attributes, standard ones first, in file order.
func (cfg *DictionaryConfig) Entries() []dicom.Entry {
	return cfg.entries
}

// CheckVersion fails if `required_version` is set and current does not satisfy it.
func (cfg *DictionaryConfig) CheckVersion(current *version.Version) error {
	if cfg.RequiredVersion == nil {
		return nil
	}

	constraint, err := version.NewConstraint(*cfg.RequiredVersion)
	if err != nil {
		return errors.New(err)
	}

	if !constraint.Check(current) {
		return errors.New(InvalidDcmqueryVersionError{CurrentVersion: current, VersionConstraints: constraint})
	}

	return nil
}

// Apply adds the declared attributes to catalog, replacing entries with the same tag.
func (cfg *DictionaryConfig) Apply(catalog *dicom.Catalog) {
	for _, entry := range cfg.entries {
		catalog.Add(entry)
	}
}

// LoadCatalog returns the built-in catalog extended by the dictionary file at path, if path is not empty.
func LoadCatalog(path string, current *version.Version, opts ...hclparse.Option) (*dicom.Catalog, error) {
	catalog := dicom.DefaultCatalog()

	if path == "" {
		return catalog, nil
	}

	cfg, err := ParseDictionaryFile(path, opts...)
	if err != nil {
		return nil, err
	}

	if err := cfg.CheckVersion(current); err != nil {
		return nil, err
	}

	cfg.Apply(catalog)

	return catalog, nil
}
