package request_models

import (
	"mime/multipart"

	"ecotours/internal/models/db_models"
)

type ItemInput struct {
	Title       string                `json:"title" form:"title" binding:"required,max=255"`
	Description string                `json:"description" form:"description"`
	Link        string                `json:"link" form:"link" binding:"max=500"`
	Image       *multipart.FileHeader `json:"-" form:"image"`
}

func (in *ItemInput) FromModel(m *db_models.Item) {
	in.Title = m.Title
	in.Description = m.Description
	in.Link = m.Link
}

func (in *ItemInput) Apply(m *db_models.Item) {
	m.Title = in.Title
	m.Description = in.Description
	m.Link = in.Link
}

type ServiceInput struct {
	ServiceTitle       string `json:"service_title" form:"service_title" binding:"required,max=255"`
	ServiceDescription string `json:"service_description" form:"service_description"`
}

func (in *ServiceInput) FromModel(m *db_models.Service) {
	in.ServiceTitle = m.ServiceTitle
	in.ServiceDescription = m.ServiceDescription
}

func (in *ServiceInput) Apply(m *db_models.Service) {
	m.ServiceTitle = in.ServiceTitle
	m.ServiceDescription = in.ServiceDescription
}

type GalleryPhotoInput struct {
	Image *multipart.FileHeader `json:"-" form:"image" binding:"required"`
}

type PostInput struct {
	PostTitle   string                `json:"post_title" form:"post_title" binding:"required,max=255"`
	PostContent string                `json:"post_content" form:"post_content"`
	PostImage   *multipart.FileHeader `json:"-" form:"post_image"`
}

func (in *PostInput) FromModel(m *db_models.Post) {
	in.PostTitle = m.PostTitle
	in.PostContent = m.PostContent
}

func (in *PostInput) Apply(m *db_models.Post) {
	m.PostTitle = in.PostTitle
	m.PostContent = in.PostContent
}

type FrontInput struct {
	LogoText    string                `json:"logo_text" form:"logo_text" binding:"max=255"`
	Heading     string                `json:"heading" form:"heading" binding:"max=255"`
	Subheading  string                `json:"subheading" form:"subheading" binding:"max=255"`
	Paragraph   string                `json:"paragraph" form:"paragraph"`
	LogoImage   *multipart.FileHeader `json:"-" form:"logo_image"`
	CompanyLogo *multipart.FileHeader `json:"-" form:"company_logo"`
}

func (in *FrontInput) FromModel(m *db_models.Front) {
	in.LogoText = m.LogoText
	in.Heading = m.Heading
	in.Subheading = m.Subheading
	in.Paragraph = m.Paragraph
}

func (in *FrontInput) Apply(m *db_models.Front) {
	m.LogoText = in.LogoText
	m.Heading = in.Heading
	m.Subheading = in.Subheading
	m.Paragraph = in.Paragraph
}
