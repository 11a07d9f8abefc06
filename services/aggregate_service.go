package services

import (
	"context"

	"authorshaven/models"

	"gorm.io/gorm"
)

// Counts is the derived like/dislike tally for one resource. Counts are
// always computed from the ledger, never stored, so they cannot drift
// under concurrent writes.
type Counts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// CountsFor tallies the ledger for a single article or comment.
func CountsFor(ctx context.Context, db *gorm.DB, resourceID uint) (Counts, error) {
	var counts Counts
	if err := db.WithContext(ctx).Model(&models.Like{}).
		Where("resource_id = ? AND likes = ?", resourceID, true).
		Count(&counts.Likes).Error; err != nil {
		return Counts{}, err
	}
	if err := db.WithContext(ctx).Model(&models.Like{}).
		Where("resource_id = ? AND likes = ?", resourceID, false).
		Count(&counts.Dislikes).Error; err != nil {
		return Counts{}, err
	}
	return counts, nil
}

type commentCountsRow struct {
	CommentID uint
	Likes     int64
	Dislikes  int64
}

// CountsForComments tallies every comment of an article in one grouped
// query, so rendering a thread costs a single round-trip however many
// comments it has. Comments with no reactions are present with zero
// counts via the left join.
func CountsForComments(ctx context.Context, db *gorm.DB, articleID uint) (map[uint]Counts, error) {
	var rows []commentCountsRow
	err := db.WithContext(ctx).Model(&models.Comment{}).
		Select(
			"comments.id AS comment_id",
			"COALESCE(SUM(CASE WHEN likes.likes = true THEN 1 ELSE 0 END), 0) AS likes",
			"COALESCE(SUM(CASE WHEN likes.likes = false THEN 1 ELSE 0 END), 0) AS dislikes",
		).
		Joins("LEFT JOIN likes ON likes.resource_id = comments.id AND likes.resource_type = ?", models.ResourceComment).
		Where("comments.article_id = ?", articleID).
		Group("comments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint]Counts, len(rows))
	for _, row := range rows {
		result[row.CommentID] = Counts{Likes: row.Likes, Dislikes: row.Dislikes}
	}
	return result, nil
}
