package models

// Profile is the role-specific descriptive record attached to a user. A
// single struct covers both variants; the employer-only fields stay empty for
// job seekers and Resume stays empty for employers.
type Profile struct {
	Name           string `json:"profile_name"`
	Phone          string `json:"profile_phone"`
	Address        string `json:"profile_address"`
	Company        string `json:"profile_company,omitempty"`
	Position       string `json:"profile_position,omitempty"`
	CompanyAddress string `json:"profile_company_address,omitempty"`
	Resume         string `json:"profile_resume,omitempty"`
}

// requiredProfileFields lists, per role, the fields the creation call must
// carry. Kept as data so the two variants never diverge into scattered
// conditionals.
var requiredProfileFields = map[Role][]string{
	RoleEmployer: {
		"profile_name",
		"profile_phone",
		"profile_address",
		"profile_company",
		"profile_position",
		"profile_company_address",
	},
	RoleJobSeeker: {
		"profile_name",
		"profile_phone",
		"profile_address",
	},
}

// RequiredProfileFields returns the field names a profile of the given role
// must populate.
func RequiredProfileFields(role Role) []string {
	fields := requiredProfileFields[role]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// MissingProfileFields returns the required fields of the given role that p
// leaves empty. An empty result means p is complete for that role.
func MissingProfileFields(p Profile, role Role) []string {
	values := map[string]string{
		"profile_name":            p.Name,
		"profile_phone":           p.Phone,
		"profile_address":         p.Address,
		"profile_company":         p.Company,
		"profile_position":        p.Position,
		"profile_company_address": p.CompanyAddress,
	}

	var missing []string
	for _, field := range requiredProfileFields[role] {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}
