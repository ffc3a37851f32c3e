package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string `gorm:"size:100"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;default:user"`
}
