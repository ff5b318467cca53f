package model

import "gorm.io/gorm"

// Category labels acronyms through the acronym/category pivot. Names are not
// unique in this model.
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Category{})
}
