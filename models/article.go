package models

import "time"

// Article is hard-deleted (with its comments and ledger rows) so slugs can
// be reused after deletion.
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	UUID        string    `gorm:"not null" json:"uuid"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	ArticleBody string    `gorm:"type:text;not null" json:"articleBody"`
	TagList     string    `gorm:"not null" json:"tagList"`
	Image       string    `json:"image"`
	ReadTime    int       `json:"readTime"`
	AuthorID    uint      `gorm:"index;not null" json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Author     User       `gorm:"foreignKey:AuthorID" json:"author"`
	Categories []Category `gorm:"many2many:article_categories" json:"Categories"`
	Tags       []Tag      `gorm:"many2many:article_tags" json:"Tags"`
}
