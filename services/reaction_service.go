package services

import (
	"context"
	"errors"

	"authorshaven/models"

	"gorm.io/gorm"
)

// React applies one like/dislike action to an article or comment and
// returns the refreshed counts. Transitions over the single ledger row for
// (resourceID, userID):
//
//	absent            -> created with the given polarity
//	same polarity     -> deleted (a repeated like is an undo)
//	opposite polarity -> updated in place
//
// The target must exist before anything is written. Mutation and the count
// read share one transaction so the response reflects the write. The
// unique index on (resource_id, user_id) backstops concurrent first
// reactions; the loser of that race surfaces a storage error rather than a
// duplicate row.
func React(ctx context.Context, db *gorm.DB, resourceType string, resourceID, userID uint, likes bool) (Counts, error) {
	if err := resourceExists(ctx, db, resourceType, resourceID); err != nil {
		return Counts{}, err
	}

	var counts Counts
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("resource_id = ? AND user_id = ?", resourceID, userID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row := models.Like{
				ResourceID:   resourceID,
				UserID:       userID,
				ResourceType: resourceType,
				Likes:        likes,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		case existing.Likes == likes:
			if err := tx.Delete(&models.Like{}, existing.ID).Error; err != nil {
				return err
			}
		default:
			if err := tx.Model(&models.Like{}).Where("id = ?", existing.ID).
				Update("likes", likes).Error; err != nil {
				return err
			}
		}

		counts, err = CountsFor(ctx, tx, resourceID)
		return err
	})
	if err != nil {
		return Counts{}, err
	}
	return counts, nil
}

func resourceExists(ctx context.Context, db *gorm.DB, resourceType string, resourceID uint) error {
	var count int64
	switch resourceType {
	case models.ResourceArticle:
		if err := db.WithContext(ctx).Model(&models.Article{}).
			Where("id = ?", resourceID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewNotFoundError("Article not found")
		}
	case models.ResourceComment:
		if err := db.WithContext(ctx).Model(&models.Comment{}).
			Where("id = ?", resourceID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewNotFoundError("Comment not found")
		}
	default:
		return NewValidationError("type must be either article or comment")
	}
	return nil
}
