package validation

import (
	"strings"

	"github.com/aaywp/portal/internal/client/models"
)

// Rule is the validator tag and messages for one registration field.
// Messages is keyed by the failing tag; "*" is the fallback.
type Rule struct {
	Field    string
	Label    string
	Tag      string
	Required bool
	Messages map[string]string
}

func (r Rule) message(tag string) string {
	return lookup(r.Messages, tag, r.Label)
}

// Registration field names.
const (
	FieldName               = "name"
	FieldCNIC               = "cnic"
	FieldDateOfBirth        = "dateOfBirth"
	FieldGender             = "gender"
	FieldFatherOrHusband    = "fatherOrHusbandName"
	FieldFamilyMembersCount = "familyMembersCount"
	FieldEducation          = "education"
	FieldOccupation         = "occupation"
	FieldPhone              = "phone"
	FieldWhatsApp           = "whatsapp"
	FieldEmail              = "email"
	FieldProvince           = "province"
	FieldDistrict           = "district"
	FieldTehsil             = "tehsil"
	FieldUnionCouncil       = "unionCouncil"
	FieldAddress            = "address"
	FieldCaste              = "caste"
	FieldMaritalStatus      = "maritalStatus"
	FieldMembershipType     = "membershipType"
	FieldRemarks            = "remarks"
	FieldProfilePhoto       = "profilePhoto"
)

func oneOf(vals []string) string {
	return "oneof=" + strings.Join(vals, " ")
}

var registrationRules = []Rule{
	{
		Field: FieldName, Label: "Full name", Required: true,
		Tag: "required,min=2,max=100",
		Messages: map[string]string{
			"required": "Please enter your full name",
			"*":        "Full name must be between 2 and 100 characters",
		},
	},
	{
		Field: FieldCNIC, Label: "CNIC", Required: true,
		Tag: "required,cnic",
		Messages: map[string]string{
			"required": "Please enter your CNIC",
			"cnic":     "Please enter valid CNIC format (12345-1234567-1)",
		},
	},
	{
		Field: FieldDateOfBirth, Label: "Date of birth", Required: true,
		Tag: "required,datetime=" + models.DateLayout + ",pastdate",
		Messages: map[string]string{
			"required": "Please select your date of birth",
			"datetime": "Please enter date of birth as YYYY-MM-DD",
			"pastdate": "Date of birth cannot be in the future",
		},
	},
	{
		Field: FieldGender, Label: "Gender", Required: true,
		Tag: "required," + oneOf(models.Strings(models.Genders)),
		Messages: map[string]string{
			"required": "Please select your gender",
			"oneof":    "Gender must be male or female",
		},
	},
	{
		Field: FieldFatherOrHusband, Label: "Father/Husband name", Required: true,
		Tag: "required,min=2,max=100",
		Messages: map[string]string{
			"required": "Please enter father/husband name",
			"*":        "Father/Husband name must be between 2 and 100 characters",
		},
	},
	{
		Field: FieldFamilyMembersCount, Label: "Family members", Required: true,
		Tag: "required,headcount",
		Messages: map[string]string{
			"required":  "Please enter number of family members",
			"headcount": "Family members must be a number from 1 to 50",
		},
	},
	{
		Field: FieldEducation, Label: "Education", Required: true,
		Tag: "required," + oneOf(models.Strings(models.Educations)),
		Messages: map[string]string{
			"required": "Please enter your education",
			"oneof":    "Education must be one of: " + strings.Join(models.Strings(models.Educations), ", "),
		},
	},
	{
		Field: FieldOccupation, Label: "Occupation", Required: true,
		Tag: "required,min=2,max=100",
		Messages: map[string]string{
			"required": "Please enter your occupation",
			"*":        "Occupation must be between 2 and 100 characters",
		},
	},
	{
		Field: FieldPhone, Label: "Phone", Required: true,
		Tag: "required,pkphone",
		Messages: map[string]string{
			"required": "Please enter your phone number",
			"pkphone":  "Please enter valid phone format (+92XXXXXXXXXX)",
		},
	},
	{
		Field: FieldWhatsApp, Label: "WhatsApp",
		Tag: "omitempty,pkphone",
		Messages: map[string]string{
			"pkphone": "Please enter valid WhatsApp format (+92XXXXXXXXXX)",
		},
	},
	{
		Field: FieldEmail, Label: "Email", Required: true,
		Tag: "required,email",
		Messages: map[string]string{
			"required": "Please enter your email",
			"email":    "Please enter valid email address",
		},
	},
	{
		Field: FieldProvince, Label: "Province", Required: true,
		Tag: "required,province",
		Messages: map[string]string{
			"required": "Please select your province",
			"province": "Please select one of: " + strings.Join(models.Provinces, ", "),
		},
	},
	{
		Field: FieldDistrict, Label: "District", Required: true,
		Tag: "required,min=2,max=50",
		Messages: map[string]string{
			"required": "Please enter your district",
			"*":        "District must be between 2 and 50 characters",
		},
	},
	{
		Field: FieldTehsil, Label: "Tehsil", Required: true,
		Tag: "required,min=2,max=50",
		Messages: map[string]string{
			"required": "Please enter your tehsil",
			"*":        "Tehsil must be between 2 and 50 characters",
		},
	},
	{
		Field: FieldUnionCouncil, Label: "Union council",
		Tag: "omitempty,max=100",
		Messages: map[string]string{
			"*": "Union council must be at most 100 characters",
		},
	},
	{
		Field: FieldAddress, Label: "Address", Required: true,
		Tag: "required,min=5,max=300",
		Messages: map[string]string{
			"required": "Please enter your complete address",
			"*":        "Address must be between 5 and 300 characters",
		},
	},
	{
		Field: FieldCaste, Label: "Caste",
		Tag: "omitempty,min=2,max=50",
		Messages: map[string]string{
			"*": "Caste must be between 2 and 50 characters",
		},
	},
	{
		Field: FieldMaritalStatus, Label: "Marital status",
		Tag: "omitempty," + oneOf(models.Strings(models.MaritalStatuses)),
		Messages: map[string]string{
			"oneof": "Marital status must be one of: " + strings.Join(models.Strings(models.MaritalStatuses), ", "),
		},
	},
	{
		Field: FieldMembershipType, Label: "Membership type", Required: true,
		Tag: "required,membership",
		Messages: map[string]string{
			"required":   "Please select membership type",
			"membership": "Membership type must be member, donor or volunteer",
		},
	},
	{
		Field: FieldRemarks, Label: "Remarks",
		Tag: "omitempty,max=500",
		Messages: map[string]string{
			"*": "Remarks must be at most 500 characters",
		},
	},
	{
		Field: FieldProfilePhoto, Label: "Profile photo",
		Tag: "omitempty,file",
		Messages: map[string]string{
			"file": "Profile photo must be an existing image file",
		},
	},
}

var contactMessages = map[string]map[string]string{
	"name": {
		"required": "Please enter your name",
		"*":        "Name must be between 2 and 100 characters",
	},
	"email": {
		"required": "Please enter your email",
		"email":    "Please enter valid email",
	},
	"phone": {
		"required": "Please enter your phone number",
		"pkphone":  "Please enter valid phone format (+92XXXXXXXXXX)",
	},
	"subject": {
		"required": "Please enter subject",
		"*":        "Subject must be between 5 and 200 characters",
	},
	"message": {
		"required": "Please enter your message",
		"*":        "Message must be between 10 and 1000 characters",
	},
}
