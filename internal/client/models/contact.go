package models

import "encoding/json"

// ContactRequest is the body of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,pkphone"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

func (c *ContactMessage) UnmarshalJSON(b []byte) error {
	type plain ContactMessage
	aux := struct {
		*plain
		MongoID ID `json:"_id"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.MongoID
	}
	return nil
}

// Status renders the read flag the way the dashboard shows it.
func (c ContactMessage) Status() string {
	if c.IsRead {
		return "Read"
	}
	return "Unread"
}
