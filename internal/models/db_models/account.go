package db_models

type Account struct {
	BaseModel
	Name         string `db:"name"`
	Email        string `gorm:"uniqueIndex;not null" db:"email"`
	PasswordHash string `gorm:"not null" db:"password_hash"`

	Trips []Trip `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" db:"-"`
}
