package dbmodels

import (
	"time"
)

// BaseModel is embedded by every table. Ids are generated server-side
// by uuid_generate_v4, so records can be created without picking one.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
