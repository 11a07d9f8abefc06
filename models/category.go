package models

// Category is a curated classification attached to articles. Discovery
// treats it as a filter predicate only.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
