package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Acronym is an abbreviation with its expansion, owned by exactly one user.
type Acronym struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Short  string `gorm:"type:varchar(100);not null" json:"short"`
	Long   string `gorm:"type:varchar(255);not null" json:"long"`
	UserID string `gorm:"size:36;index;not null" json:"userID"`
}

func (Acronym) TableName() string {
	return "acronyms"
}

// AcronymCategoryPivot is one edge of the acronym/category many-to-many
// relation. Duplicate edges for the same pair are tolerated.
type AcronymCategoryPivot struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	AcronymID  int64  `gorm:"index;not null" json:"acronymID"`
	CategoryID int64  `gorm:"index;not null" json:"categoryID"`
}

func (AcronymCategoryPivot) TableName() string {
	return "acronym_category_pivots"
}

func (p *AcronymCategoryPivot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Acronym{}, &AcronymCategoryPivot{})
}
