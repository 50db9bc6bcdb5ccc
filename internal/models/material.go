package models

import "time"

// MaterialSection is one page of lesson content shown before the quiz.
type MaterialSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Topic     string    `json:"topic" gorm:"type:text;not null"`
	Order     int       `json:"order" gorm:"column:order;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}

func (MaterialSection) TableName() string {
	return "material_sections"
}
