package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

// BaseModel is shared by append-only records: a time-ordered id and a
// creation timestamp in unix seconds.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" db:"id"`
	CreatedAt int64     `gorm:"autoCreateTime" db:"created_at"`
}

// Init assigns the id and timestamp if they are unset. The sqlx backend calls
// it directly; gorm calls it through BeforeCreate.
func (b *BaseModel) Init() error {
	if b.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		b.ID = id
	}
	if b.CreatedAt == 0 {
		b.CreatedAt = time.Now().Unix()
	}
	return nil
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	return b.Init()
}
