package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the persisted account record. Password holds a bcrypt digest,
// never plaintext, and is excluded from JSON so a raw User can not leak it.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Public is the projection of a User that is safe to return to clients.
// Every user-returning response path goes through ToPublic.
type Public struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func (u *User) ToPublic() Public {
	return Public{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
