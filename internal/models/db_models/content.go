package db_models

type Item struct {
	BaseModel
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Link        string `gorm:"size:500"`
	Image       string `gorm:"size:512"`
}

type Service struct {
	BaseModel
	ServiceTitle       string `gorm:"size:255;not null"`
	ServiceDescription string `gorm:"type:text"`
}

// GalleryPhoto exposes CreatedAt as uploaded_at.
type GalleryPhoto struct {
	BaseModel
	Image string `gorm:"size:512;not null"`
}

type Post struct {
	BaseModel
	PostTitle   string `gorm:"size:255;not null"`
	PostContent string `gorm:"type:text"`
	PostImage   string `gorm:"size:512"`
}

type Front struct {
	BaseModel
	LogoText    string `gorm:"size:255"`
	Heading     string `gorm:"size:255"`
	Subheading  string `gorm:"size:255"`
	Paragraph   string `gorm:"type:text"`
	LogoImage   string `gorm:"size:512"`
	CompanyLogo string `gorm:"size:512"`
}

func (Front) TableName() string {
	return "front"
}
