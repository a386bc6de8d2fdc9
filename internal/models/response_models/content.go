package response_models

import (
	"context"
	"time"

	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

type Item struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Image       *string   `json:"image"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewItem(ctx context.Context, m *db_models.Item) Item {
	return Item{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		Image:       utils.StoredRef(m.Image),
		ImageURL:    utils.MediaURL(ctx, m.Image),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type Service struct {
	ID                 uint      `json:"id"`
	ServiceTitle       string    `json:"service_title"`
	ServiceDescription string    `json:"service_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewService(m *db_models.Service) Service {
	return Service{
		ID:                 m.ID,
		ServiceTitle:       m.ServiceTitle,
		ServiceDescription: m.ServiceDescription,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

type GalleryPhoto struct {
	ID         uint      `json:"id"`
	Image      *string   `json:"image"`
	ImageURL   *string   `json:"image_url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func NewGalleryPhoto(ctx context.Context, m *db_models.GalleryPhoto) GalleryPhoto {
	return GalleryPhoto{
		ID:         m.ID,
		Image:      utils.StoredRef(m.Image),
		ImageURL:   utils.MediaURL(ctx, m.Image),
		UploadedAt: m.CreatedAt,
	}
}

type Post struct {
	ID           uint      `json:"id"`
	PostTitle    string    `json:"post_title"`
	PostContent  string    `json:"post_content"`
	PostImage    *string   `json:"post_image"`
	PostImageURL *string   `json:"post_image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPost(ctx context.Context, m *db_models.Post) Post {
	return Post{
		ID:           m.ID,
		PostTitle:    m.PostTitle,
		PostContent:  m.PostContent,
		PostImage:    utils.StoredRef(m.PostImage),
		PostImageURL: utils.MediaURL(ctx, m.PostImage),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type Front struct {
	ID             uint      `json:"id"`
	LogoText       string    `json:"logo_text"`
	Heading        string    `json:"heading"`
	Subheading     string    `json:"subheading"`
	Paragraph      string    `json:"paragraph"`
	LogoImage      *string   `json:"logo_image"`
	LogoImageURL   *string   `json:"logo_image_url"`
	CompanyLogo    *string   `json:"company_logo"`
	CompanyLogoURL *string   `json:"company_logo_url"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewFront(ctx context.Context, m *db_models.Front) Front {
	return Front{
		ID:             m.ID,
		LogoText:       m.LogoText,
		Heading:        m.Heading,
		Subheading:     m.Subheading,
		Paragraph:      m.Paragraph,
		LogoImage:      utils.StoredRef(m.LogoImage),
		LogoImageURL:   utils.MediaURL(ctx, m.LogoImage),
		CompanyLogo:    utils.StoredRef(m.CompanyLogo),
		CompanyLogoURL: utils.MediaURL(ctx, m.CompanyLogo),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
