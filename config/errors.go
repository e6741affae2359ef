package config

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

type InvalidDcmqueryVersionError struct {
	CurrentVersion     *version.Version
	VersionConstraints version.Constraints
}

func (err InvalidDcmqueryVersionError) Error() string {
	return fmt.Sprintf("The currently running version of dcmquery (%s) is not compatible with the version the dictionary requires (%s).", err.CurrentVersion, err.VersionConstraints)
}
