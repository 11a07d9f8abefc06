package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const wordsPerMinute = 200

// UUIDFragment returns the short public identifier carried by every
// article: the first dash-separated group of a fresh UUID.
func UUIDFragment() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// Slugify derives a URL slug from an article title.
func Slugify(title string) string {
	return slug.Make(title)
}

// ReadTime estimates reading time in minutes at 200 words per minute,
// never less than one minute.
func ReadTime(body string) int {
	words := len(strings.Fields(body))
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
