package models

import (
	"time"
)

// Comment is immutable once created; it is only removed when its task is deleted.
type Comment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	TaskID      uint64    `gorm:"not null;index" json:"task_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorEmail string    `gorm:"type:varchar(255);not null" json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
