package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"authorshaven/models"

	"gorm.io/gorm"
)

// SearchInput is the raw, untyped filter payload as bound from the
// request. The list fields stay interface{} so a caller sending a number
// or an array gets a field-level validation message instead of a bind
// failure.
type SearchInput struct {
	SearchQuery string
	Categories  interface{} `json:"categories"`
	Tags        interface{} `json:"tags"`
	AuthorNames interface{} `json:"authorNames"`
}

// SearchCriteria is the validated form: lower-cased value lists, OR within
// a list, AND across the four kinds. Empty lists impose no constraint.
type SearchCriteria struct {
	SearchQuery string
	Categories  []string
	Tags        []string
	AuthorNames []string
}

// SearchResult always carries the same row shape as the plain listing:
// author, Categories and Tags are hydrated regardless of which filters
// were supplied.
type SearchResult struct {
	Count int64            `json:"count"`
	Rows  []models.Article `json:"rows"`
}

// ParseSearchCriteria validates the raw input before any query runs.
// Every violation is reported; the first message matches the offending
// field by name.
func ParseSearchCriteria(in SearchInput) (SearchCriteria, error) {
	var (
		criteria SearchCriteria
		messages []string
	)

	if in.SearchQuery != "" {
		query := strings.TrimSpace(in.SearchQuery)
		if utf8.RuneCountInString(query) < 2 {
			messages = append(messages, "searchQuery length must be at least 2 characters long")
		}
		criteria.SearchQuery = strings.ToLower(query)
	}

	for _, field := range []struct {
		name  string
		value interface{}
		dest  *[]string
	}{
		{"categories", in.Categories, &criteria.Categories},
		{"tags", in.Tags, &criteria.Tags},
		{"authorNames", in.AuthorNames, &criteria.AuthorNames},
	} {
		if field.value == nil {
			continue
		}
		s, ok := field.value.(string)
		if !ok {
			messages = append(messages, field.name+" must be a string")
			continue
		}
		*field.dest = splitList(s)
	}

	if len(messages) > 0 {
		return SearchCriteria{}, NewValidationError(messages...)
	}
	return criteria, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.ToLower(strings.TrimSpace(part)); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Search runs the discovery query: free text over title, body,
// description, author names, tag and category names, combined with the
// value-list filters. Pagination shares the listing boundary rule, so an
// out-of-range page is a not-found condition here too.
func Search(ctx context.Context, db *gorm.DB, criteria SearchCriteria, pageReq *PageRequest) (SearchResult, error) {
	q := db.WithContext(ctx).Model(&models.Article{})

	if len(criteria.Categories) > 0 {
		q = q.Where("articles.id IN (?)", categoryArticleIDs(db, criteria.Categories))
	}
	if len(criteria.Tags) > 0 {
		q = q.Where("articles.id IN (?)", tagArticleIDs(db, criteria.Tags))
	}
	if len(criteria.AuthorNames) > 0 {
		authorIDs := db.Model(&models.User{}).Select("users.id").
			Where("LOWER(users.firstname) IN ? OR LOWER(users.lastname) IN ? OR LOWER(users.username) IN ?",
				criteria.AuthorNames, criteria.AuthorNames, criteria.AuthorNames)
		q = q.Where("articles.author_id IN (?)", authorIDs)
	}
	if criteria.SearchQuery != "" {
		pattern := "%" + criteria.SearchQuery + "%"
		authorMatch := db.Model(&models.User{}).Select("users.id").
			Where("LOWER(users.firstname) LIKE ? OR LOWER(users.lastname) LIKE ? OR LOWER(users.username) LIKE ?",
				pattern, pattern, pattern)
		q = q.Where(
			db.Where("LOWER(articles.title) LIKE ?", pattern).
				Or("LOWER(articles.description) LIKE ?", pattern).
				Or("LOWER(articles.article_body) LIKE ?", pattern).
				Or("LOWER(articles.tag_list) LIKE ?", pattern).
				Or("articles.author_id IN (?)", authorMatch).
				Or("articles.id IN (?)", categoryArticleIDsLike(db, pattern)).
				Or("articles.id IN (?)", tagArticleIDsLike(db, pattern)),
		)
	}

	q = q.Session(&gorm.Session{})

	var result SearchResult
	if err := q.Count(&result.Count).Error; err != nil {
		return SearchResult{}, err
	}

	if pageReq != nil {
		page, err := Paginate(result.Count, pageReq)
		if err != nil {
			return SearchResult{}, err
		}
		q = q.Offset(page.Offset).Limit(page.Limit)
	}

	if err := q.Preload("Author").Preload("Categories").Preload("Tags").
		Order("articles.created_at DESC").
		Find(&result.Rows).Error; err != nil {
		return SearchResult{}, err
	}
	return result, nil
}

func categoryArticleIDs(db *gorm.DB, names []string) *gorm.DB {
	return db.Table("article_categories").Select("article_categories.article_id").
		Joins("JOIN categories ON categories.id = article_categories.category_id").
		Where("LOWER(categories.name) IN ?", names)
}

func tagArticleIDs(db *gorm.DB, names []string) *gorm.DB {
	return db.Table("article_tags").Select("article_tags.article_id").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("LOWER(tags.name) IN ?", names)
}

func categoryArticleIDsLike(db *gorm.DB, pattern string) *gorm.DB {
	return db.Table("article_categories").Select("article_categories.article_id").
		Joins("JOIN categories ON categories.id = article_categories.category_id").
		Where("LOWER(categories.name) LIKE ?", pattern)
}

func tagArticleIDsLike(db *gorm.DB, pattern string) *gorm.DB {
	return db.Table("article_tags").Select("article_tags.article_id").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("LOWER(tags.name) LIKE ?", pattern)
}
