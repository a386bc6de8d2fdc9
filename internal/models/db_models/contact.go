package db_models

type Contact struct {
	BaseModel
	ContactNumber string `gorm:"size:30"`
	Email         string `gorm:"size:254"`
	Address       string `gorm:"type:text"`
	FacebookLink  string `gorm:"size:500"`
	WhatsappLink  string `gorm:"size:500"`
	InstagramLink string `gorm:"size:500"`
}

// UserDetails is a message left through the public contact form.
type UserDetails struct {
	BaseModel
	UserName    string `gorm:"size:255;not null"`
	UserEmail   string `gorm:"size:254;not null"`
	UserMessage string `gorm:"type:text;not null"`
}

func (UserDetails) TableName() string {
	return "user_details"
}
