package cff

import "github.com/blang/semver/v4"

const (
	// DefaultVersion is the cff-version given to newly created documents.
	DefaultVersion = "1.2.0"

	// MinValidatableVersion is the lowest cff-version with a supported
	// schema. Documents loaded with an older version are upgraded to it.
	MinValidatableVersion = "1.2.0"
)

// updateCFFVersion upgrades an out-of-date cff-version string to the
// minimum validatable version. The comparison is semantic, not lexical;
// empty or unparsable versions are passed through unchanged.
func updateCFFVersion(version string) string {
	if version == "" {
		return version
	}
	v, err := semver.Parse(version)
	if err != nil {
		return version
	}
	min, err := semver.Parse(MinValidatableVersion)
	if err != nil {
		return version
	}
	if v.LT(min) {
		return MinValidatableVersion
	}
	return version
}
