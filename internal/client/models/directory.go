package models

import "encoding/json"

// Registration is the body of POST /directory/. Optional fields carry
// omitempty so that blank answers are left out rather than sent as "".
type Registration struct {
	FullName           string `json:"full_name"`
	CNIC               string `json:"cnic"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	FatherName         string `json:"father_name"`
	FamilyMembersCount int    `json:"family_members_count"`
	Qualification      string `json:"qualification"`
	Profession         string `json:"profession"`
	Phone              string `json:"phone"`
	WhatsApp           string `json:"whatsapp,omitempty"`
	Email              string `json:"email"`
	Province           string `json:"province"`
	District           string `json:"district"`
	Tehsil             string `json:"tehsil"`
	City               string `json:"city"`
	UnionCouncil       string `json:"union_council,omitempty"`
	Address            string `json:"address"`
	Caste              string `json:"caste,omitempty"`
	MaritalStatus      string `json:"marital_status"`
	MembershipType     string `json:"membership_type"`
	Notes              string `json:"notes,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
}

// Member is a directory record as listed on the admin dashboard.
type Member struct {
	ID                 ID     `json:"id"`
	FullName           string `json:"full_name"`
	FatherName         string `json:"father_name"`
	CNIC               string `json:"cnic"`
	Gender             string `json:"gender"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Qualification      string `json:"qualification"`
	Profession         string `json:"profession"`
	City               string `json:"city"`
	District           string `json:"district"`
	Province           string `json:"province"`
	Caste              string `json:"caste"`
	MaritalStatus      string `json:"marital_status"`
	MembershipType     string `json:"membership_type"`
	FamilyMembersCount int    `json:"family_members_count"`
	Status             string `json:"status"`
	Notes              string `json:"notes"`
	ProfileImage       string `json:"profile_image"`
	CreatedAt          string `json:"created_at"`
}

// UnmarshalJSON accepts the record id either as "id" or as "_id".
func (m *Member) UnmarshalJSON(b []byte) error {
	type plain Member
	aux := struct {
		*plain
		MongoID ID `json:"_id"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = aux.MongoID
	}
	return nil
}
