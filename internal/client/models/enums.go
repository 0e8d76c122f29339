package models

import "strings"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var Genders = []Gender{GenderMale, GenderFemale}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

var MaritalStatuses = []MaritalStatus{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}

type MembershipType string

const (
	MembershipMember    MembershipType = "member"
	MembershipDonor     MembershipType = "donor"
	MembershipVolunteer MembershipType = "volunteer"
)

var MembershipTypes = []MembershipType{MembershipMember, MembershipDonor, MembershipVolunteer}

// NormalizeMembership lower-cases and trims user input, so "Donor" and
// " donor " both map to MembershipDonor.
func NormalizeMembership(s string) MembershipType {
	return MembershipType(strings.ToLower(strings.TrimSpace(s)))
}

type Education string

const (
	EducationPrimary      Education = "primary"
	EducationSecondary    Education = "secondary"
	EducationIntermediate Education = "intermediate"
	EducationBachelor     Education = "bachelor"
	EducationMaster       Education = "master"
	EducationPhD          Education = "phd"
)

var Educations = []Education{
	EducationPrimary, EducationSecondary, EducationIntermediate,
	EducationBachelor, EducationMaster, EducationPhD,
}

// Provinces lists the administrative units accepted by the registration form.
var Provinces = []string{
	"Punjab",
	"Sindh",
	"Khyber Pakhtunkhwa",
	"Balochistan",
	"Islamabad Capital Territory",
	"Gilgit-Baltistan",
	"Azad Jammu and Kashmir",
}

// Strings converts a typed enum list for prompts and validator tags.
func Strings[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

// DateLayout is the wire format of dates of birth.
const DateLayout = "2006-01-02"
