package db_models

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type Account struct {
	BaseModel
	Name         string `gorm:"size:150"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:customer"`
}
