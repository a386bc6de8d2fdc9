package response_models

import (
	"time"

	"ecotours/internal/models/db_models"
)

type Contact struct {
	ID            uint      `json:"id"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	FacebookLink  string    `json:"facebook_link"`
	WhatsappLink  string    `json:"whatsapp_link"`
	InstagramLink string    `json:"instagram_link"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewContact(m *db_models.Contact) Contact {
	return Contact{
		ID:            m.ID,
		ContactNumber: m.ContactNumber,
		Email:         m.Email,
		Address:       m.Address,
		FacebookLink:  m.FacebookLink,
		WhatsappLink:  m.WhatsappLink,
		InstagramLink: m.InstagramLink,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SocialLinks is the footer view of the latest contact. Fields are empty
// strings when no contact exists.
type SocialLinks struct {
	FacebookLink  string `json:"facebook_link"`
	WhatsappLink  string `json:"whatsapp_link"`
	InstagramLink string `json:"instagram_link"`
	ContactNumber string `json:"contact_number"`
}

func NewSocialLinks(m *db_models.Contact) SocialLinks {
	if m == nil {
		return SocialLinks{}
	}
	return SocialLinks{
		FacebookLink:  m.FacebookLink,
		WhatsappLink:  m.WhatsappLink,
		InstagramLink: m.InstagramLink,
		ContactNumber: m.ContactNumber,
	}
}

type UserDetails struct {
	ID          uint      `json:"id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	UserMessage string    `json:"user_message"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewUserDetails(m *db_models.UserDetails) UserDetails {
	return UserDetails{
		ID:          m.ID,
		UserName:    m.UserName,
		UserEmail:   m.UserEmail,
		UserMessage: m.UserMessage,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
