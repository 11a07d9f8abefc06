package models

import "time"

// Comment belongs to one article and is removed together with it.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"index;not null" json:"articleId"`
	AuthorID  uint      `gorm:"index;not null" json:"authorId"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}
