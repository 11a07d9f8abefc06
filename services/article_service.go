package services

import (
	"context"
	"errors"

	"authorshaven/models"
	"authorshaven/utils"

	"gorm.io/gorm"
)

// ArticleInput carries the writable article fields. Shape validation
// (presence, format) happens at the controller boundary before this
// package is reached.
type ArticleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ArticleBody string `json:"articleBody"`
	TagList     string `json:"tagList"`
	Image       string `json:"image"`
}

// ArticleView is the single-article read model: the article, its derived
// counts, and its comment thread with per-comment counts.
type ArticleView struct {
	Article      models.Article `json:"article"`
	Likes        int64          `json:"likes"`
	Dislikes     int64          `json:"dislikes"`
	Comments     []CommentView  `json:"comments"`
	NoOfComments int            `json:"noOfComments"`
}

type CommentView struct {
	models.Comment
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// PagedArticles is the paginated listing shape.
type PagedArticles struct {
	Count int64            `json:"count"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Data  []models.Article `json:"data"`
}

// CreateArticle derives the slug, public uuid fragment and read time, then
// persists the article for its author. A slug collision gets the uuid
// fragment appended so titles stay reusable.
func CreateArticle(ctx context.Context, db *gorm.DB, authorID uint, in ArticleInput) (models.Article, error) {
	article := models.Article{
		Slug:        utils.Slugify(in.Title),
		UUID:        utils.UUIDFragment(),
		Title:       in.Title,
		Description: in.Description,
		ArticleBody: in.ArticleBody,
		TagList:     in.TagList,
		Image:       in.Image,
		ReadTime:    utils.ReadTime(in.ArticleBody),
		AuthorID:    authorID,
	}

	var taken int64
	if err := db.WithContext(ctx).Model(&models.Article{}).
		Where("slug = ?", article.Slug).Count(&taken).Error; err != nil {
		return models.Article{}, err
	}
	if taken > 0 {
		article.Slug = article.Slug + "-" + article.UUID
	}

	if err := db.WithContext(ctx).Create(&article).Error; err != nil {
		return models.Article{}, err
	}
	return article, nil
}

// ListArticles returns articles with their authors. A nil page request
// returns the full set; otherwise the pagination boundary rule applies.
func ListArticles(ctx context.Context, db *gorm.DB, pageReq *PageRequest) (*PagedArticles, []models.Article, error) {
	base := db.WithContext(ctx).Model(&models.Article{})

	if pageReq == nil {
		var articles []models.Article
		if err := base.Preload("Author").Preload("Categories").Preload("Tags").
			Order("articles.created_at DESC").Find(&articles).Error; err != nil {
			return nil, nil, err
		}
		return nil, articles, nil
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, nil, err
	}
	page, err := Paginate(total, pageReq)
	if err != nil {
		return nil, nil, err
	}

	var articles []models.Article
	if err := db.WithContext(ctx).Model(&models.Article{}).
		Preload("Author").Preload("Categories").Preload("Tags").
		Order("articles.created_at DESC").
		Offset(page.Offset).Limit(page.Limit).
		Find(&articles).Error; err != nil {
		return nil, nil, err
	}

	return &PagedArticles{
		Count: total,
		Page:  pageReq.Page,
		Limit: page.Limit,
		Data:  articles,
	}, nil, nil
}

// GetArticle loads one article by slug together with its counts and
// comment thread. The thread's counts come from one grouped query.
func GetArticle(ctx context.Context, db *gorm.DB, slug string) (ArticleView, error) {
	var article models.Article
	err := db.WithContext(ctx).Preload("Author").Preload("Categories").Preload("Tags").
		Where("slug = ?", slug).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ArticleView{}, NewNotFoundError("Article not found")
	}
	if err != nil {
		return ArticleView{}, err
	}

	counts, err := CountsFor(ctx, db, article.ID)
	if err != nil {
		return ArticleView{}, err
	}

	comments, err := CommentsWithCounts(ctx, db, article.ID)
	if err != nil {
		return ArticleView{}, err
	}

	return ArticleView{
		Article:      article,
		Likes:        counts.Likes,
		Dislikes:     counts.Dislikes,
		Comments:     comments,
		NoOfComments: len(comments),
	}, nil
}

// EditArticle updates the owned article matching slug AND author in one
// predicate. A non-owner probing a real slug sees the same not-found as a
// missing slug; the two cases are indistinguishable on purpose.
func EditArticle(ctx context.Context, db *gorm.DB, slug string, authorID uint, in ArticleInput) (models.Article, error) {
	fields := map[string]interface{}{}
	if in.Title != "" {
		fields["title"] = in.Title
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if in.ArticleBody != "" {
		fields["article_body"] = in.ArticleBody
		fields["read_time"] = utils.ReadTime(in.ArticleBody)
	}
	if in.TagList != "" {
		fields["tag_list"] = in.TagList
	}
	if in.Image != "" {
		fields["image"] = in.Image
	}

	if len(fields) > 0 {
		if err := db.WithContext(ctx).Model(&models.Article{}).
			Where("slug = ? AND author_id = ?", slug, authorID).
			Updates(fields).Error; err != nil {
			return models.Article{}, err
		}
	}

	// RowsAffected is zero both for a missed predicate and for a no-op
	// update, so re-read with the same predicate to tell them apart.
	var article models.Article
	err := db.WithContext(ctx).Preload("Author").
		Where("slug = ? AND author_id = ?", slug, authorID).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Article{}, NewNotFoundError("Article not found")
	}
	if err != nil {
		return models.Article{}, err
	}
	return article, nil
}

// DeleteArticle removes the owned article matching slug AND author, its
// comments, and every ledger row pointing at the article or those
// comments, all in one transaction.
func DeleteArticle(ctx context.Context, db *gorm.DB, slug string, authorID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		err := tx.Select("id").
			Where("slug = ? AND author_id = ?", slug, authorID).
			First(&article).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Article not found")
		}
		if err != nil {
			return err
		}

		commentIDs := tx.Model(&models.Comment{}).Select("id").
			Where("article_id = ?", article.ID)
		if err := tx.Where("resource_id IN (?) AND resource_type = ?", commentIDs, models.ResourceComment).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_id = ? AND resource_type = ?", article.ID, models.ResourceArticle).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM article_categories WHERE article_id = ?", article.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM article_tags WHERE article_id = ?", article.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, article.ID).Error
	})
}
