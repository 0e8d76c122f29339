package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aaywp/portal/internal/client/models"
	v "github.com/aaywp/portal/internal/client/validation"
)

// Defaults applied when the draft leaves a field unset.
const (
	DefaultMaritalStatus      = models.MaritalSingle
	DefaultFamilyMembersCount = 1
)

// Draft is the registration record accumulated across steps, keyed by
// field name.
type Draft map[string]string

func (d Draft) get(field string) string {
	return strings.TrimSpace(d[field])
}

func (d Draft) clone() Draft {
	out := make(Draft, len(d))
	for k, val := range d {
		out[k] = val
	}
	return out
}

// ToPayload renames draft fields to the backend shape, applies defaults and
// formats the date of birth. Empty optional fields stay empty so they are
// omitted on the wire. The profile photo is not included; it is uploaded
// separately and its URL set by the caller.
func ToPayload(d Draft) (models.Registration, error) {
	p := models.Registration{
		FullName:       d.get(v.FieldName),
		CNIC:           d.get(v.FieldCNIC),
		Gender:         strings.ToLower(d.get(v.FieldGender)),
		FatherName:     d.get(v.FieldFatherOrHusband),
		Qualification:  d.get(v.FieldEducation),
		Profession:     d.get(v.FieldOccupation),
		Phone:          d.get(v.FieldPhone),
		WhatsApp:       d.get(v.FieldWhatsApp),
		Email:          d.get(v.FieldEmail),
		Province:       d.get(v.FieldProvince),
		District:       d.get(v.FieldDistrict),
		Tehsil:         d.get(v.FieldTehsil),
		City:           d.get(v.FieldTehsil),
		UnionCouncil:   d.get(v.FieldUnionCouncil),
		Address:        d.get(v.FieldAddress),
		Caste:          d.get(v.FieldCaste),
		MaritalStatus:  strings.ToLower(d.get(v.FieldMaritalStatus)),
		MembershipType: string(models.NormalizeMembership(d.get(v.FieldMembershipType))),
		Notes:          d.get(v.FieldRemarks),
	}

	if dob := d.get(v.FieldDateOfBirth); dob != "" {
		t, err := time.Parse(models.DateLayout, dob)
		if err != nil {
			return models.Registration{}, fmt.Errorf("date of birth %q: %w", dob, err)
		}
		p.DateOfBirth = t.Format(models.DateLayout)
	}

	if p.MaritalStatus == "" {
		p.MaritalStatus = string(DefaultMaritalStatus)
	}

	p.FamilyMembersCount = DefaultFamilyMembersCount
	if n := d.get(v.FieldFamilyMembersCount); n != "" {
		count, err := strconv.Atoi(n)
		if err != nil {
			return models.Registration{}, fmt.Errorf("family members count %q: %w", n, err)
		}
		p.FamilyMembersCount = count
	}

	return p, nil
}
