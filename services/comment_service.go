package services

import (
	"context"
	"errors"

	"authorshaven/models"

	"gorm.io/gorm"
)

// CreateComment attaches a comment to an article found by slug.
func CreateComment(ctx context.Context, db *gorm.DB, slug string, authorID uint, body string) (models.Comment, error) {
	var article models.Article
	err := db.WithContext(ctx).Select("id").Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, NewNotFoundError("Article not found")
	}
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ArticleID: article.ID,
		AuthorID:  authorID,
		Body:      body,
	}
	if err := db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}
	if err := db.WithContext(ctx).Preload("Author").
		First(&comment, comment.ID).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// CommentsWithCounts loads an article's thread with per-comment counts
// attached. The counts come from the grouped aggregation query, so a long
// thread still costs a fixed number of round-trips.
func CommentsWithCounts(ctx context.Context, db *gorm.DB, articleID uint) ([]CommentView, error) {
	var comments []models.Comment
	if err := db.WithContext(ctx).Preload("Author").
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	counts, err := CountsForComments(ctx, db, articleID)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		tally := counts[comment.ID]
		views = append(views, CommentView{
			Comment:  comment,
			Likes:    tally.Likes,
			Dislikes: tally.Dislikes,
		})
	}
	return views, nil
}
