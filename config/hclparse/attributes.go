package hclparse

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// StringValue evaluates expr without variables and converts the result to a string.
func (file *File) StringValue(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if err := file.HandleDiagnostics(diags); err != nil {
		return "", err
	}

	rng := expr.Range()

	if val.IsNull() || !val.IsKnown() {
		return "", file.Invalid(&rng, "Missing value", "A string value is required.")
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", file.Invalid(&rng, "Invalid value type", "A string value is required: "+err.Error())
	}

	return str.AsString(), nil
}

// Invalid reports a problem found in the file at rng as an HCL diagnostic error.
func (file *File) Invalid(rng *hcl.Range, summary, detail string) error {
	return file.HandleDiagnostics(hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  rng,
	}})
}
