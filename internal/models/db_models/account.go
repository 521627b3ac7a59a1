package db_models

// Account backs the built-in identity provider.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
}
