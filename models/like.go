package models

import "time"

// Resource types a Like row can point at. Surrogate ids are unique across
// all resource tables, so ResourceID alone identifies the target and the
// uniqueness key is (ResourceID, UserID); ResourceType only routes lookups.
const (
	ResourceArticle = "article"
	ResourceComment = "comment"
)

// Like is one user's stance on one article or comment.
// Likes is true for a like, false for a dislike.
// Rows are hard-deleted on undo so the unique index stays accurate.
type Like struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ResourceID   uint      `gorm:"not null;uniqueIndex:idx_resource_user" json:"resourceId"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_resource_user" json:"userId"`
	ResourceType string    `gorm:"not null" json:"type"`
	Likes        bool      `gorm:"not null" json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
