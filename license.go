package cff

// isLicense reports whether an identifier appears in the SPDX license list.
func isLicense(id string) bool {
	_, ok := spdxLicenses[id]
	return ok
}

// setLicense applies the shared licensing policy to a container's license
// field: input (a single identifier or a list) is filtered against the SPDX
// license list. If nothing survives the filter the previous value is
// retained; a single survivor is stored as a scalar, several as a list.
//
// Works on any model type carrying a license field, rather than being
// tied to one of them.
func setLicense(c *container, value any) {
	var input []string
	switch v := value.(type) {
	case string:
		input = []string{v}
	case []string:
		input = v
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				input = append(input, s)
			}
		}
	default:
		return
	}

	var list []string
	for _, l := range input {
		if isLicense(l) {
			list = append(list, l)
		}
	}

	switch len(list) {
	case 0:
		// Nothing valid: keep the previous value.
	case 1:
		c.fields["license"] = list[0]
	default:
		c.fields["license"] = list
	}
}

// licenseValue reads a license field as it was stored: a string, a string
// list, or "" when unset.
func licenseValue(c *container) any {
	v, ok := c.fields["license"]
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return ""
	}
}
