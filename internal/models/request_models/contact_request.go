package request_models

import "ecotours/internal/models/db_models"

type ContactInput struct {
	ContactNumber string `json:"contact_number" form:"contact_number" binding:"max=30"`
	Email         string `json:"email" form:"email" binding:"omitempty,email,max=254"`
	Address       string `json:"address" form:"address"`
	FacebookLink  string `json:"facebook_link" form:"facebook_link" binding:"omitempty,url,max=500"`
	WhatsappLink  string `json:"whatsapp_link" form:"whatsapp_link" binding:"omitempty,url,max=500"`
	InstagramLink string `json:"instagram_link" form:"instagram_link" binding:"omitempty,url,max=500"`
}

func (in *ContactInput) FromModel(m *db_models.Contact) {
	in.ContactNumber = m.ContactNumber
	in.Email = m.Email
	in.Address = m.Address
	in.FacebookLink = m.FacebookLink
	in.WhatsappLink = m.WhatsappLink
	in.InstagramLink = m.InstagramLink
}

func (in *ContactInput) Apply(m *db_models.Contact) {
	m.ContactNumber = in.ContactNumber
	m.Email = in.Email
	m.Address = in.Address
	m.FacebookLink = in.FacebookLink
	m.WhatsappLink = in.WhatsappLink
	m.InstagramLink = in.InstagramLink
}

type UserDetailsInput struct {
	UserName    string `json:"user_name" form:"user_name" binding:"required,max=255"`
	UserEmail   string `json:"user_email" form:"user_email" binding:"required,email,max=254"`
	UserMessage string `json:"user_message" form:"user_message" binding:"required"`
}

func (in *UserDetailsInput) FromModel(m *db_models.UserDetails) {
	in.UserName = m.UserName
	in.UserEmail = m.UserEmail
	in.UserMessage = m.UserMessage
}

func (in *UserDetailsInput) Apply(m *db_models.UserDetails) {
	m.UserName = in.UserName
	m.UserEmail = in.UserEmail
	m.UserMessage = in.UserMessage
}
