// Package models defines the wire types exchanged with the portal backend
// and the enumerations shared by the registration and contact forms.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Envelope is the backend's generic {success, message, data} response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Page is the backend's paginated list response.
type Page[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       []T    `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// ID is a backend record identifier. The backend emits object ids as
// strings, but numeric ids are accepted as well.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// IDFromInt is a convenience for tests and numeric backends.
func IDFromInt(n int64) ID { return ID(strconv.FormatInt(n, 10)) }

// Created is the data block returned on record creation.
type Created struct {
	ID ID `json:"id"`
}

// Count is the data block of GET /directory/count.
type Count struct {
	Total int `json:"total"`
}

// CommunityStrength is the data block of GET /directory/community_strength.
type CommunityStrength struct {
	CommunityStrength int `json:"community_strength"`
}

// AdminStats is the data block of GET /auth/stats.
type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	InactiveUsers int `json:"inactive_users"`
	AdminUsers    int `json:"admin_users"`
	MemberUsers   int `json:"member_users"`
}

// StatusUpdate is the body of PATCH /directory/{id}/status.
type StatusUpdate struct {
	Status string `json:"status"`
}
