package wizard

import v "github.com/aaywp/portal/internal/client/validation"

// Step is one of the four fixed wizard states.
type Step int

const (
	PersonalInfo Step = iota
	ContactInfo
	AddressInfo
	AdditionalInfo
)

// Steps lists the states in order.
var Steps = []Step{PersonalInfo, ContactInfo, AddressInfo, AdditionalInfo}

const (
	firstStep = PersonalInfo
	lastStep  = AdditionalInfo
)

func (s Step) String() string {
	switch s {
	case PersonalInfo:
		return "Personal Information"
	case ContactInfo:
		return "Contact Information"
	case AddressInfo:
		return "Address Information"
	case AdditionalInfo:
		return "Additional Information"
	}
	return "Unknown"
}

// Fields returns the fields rendered in s, in prompt order.
func (s Step) Fields() []string {
	switch s {
	case PersonalInfo:
		return []string{v.FieldName, v.FieldCNIC, v.FieldDateOfBirth, v.FieldGender, v.FieldFatherOrHusband, v.FieldFamilyMembersCount}
	case ContactInfo:
		return []string{v.FieldEducation, v.FieldOccupation, v.FieldPhone, v.FieldWhatsApp, v.FieldEmail}
	case AddressInfo:
		return []string{v.FieldProvince, v.FieldDistrict, v.FieldTehsil, v.FieldUnionCouncil, v.FieldAddress}
	case AdditionalInfo:
		return []string{v.FieldCaste, v.FieldMaritalStatus, v.FieldMembershipType, v.FieldRemarks, v.FieldProfilePhoto}
	}
	return nil
}

// Has reports whether field is rendered in s.
func (s Step) Has(field string) bool {
	for _, f := range s.Fields() {
		if f == field {
			return true
		}
	}
	return false
}
