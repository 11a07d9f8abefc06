// Package testutil provides the shared database fixture for integration
// tests. Tests are skipped unless TEST_MYSQL_DSN points at a disposable
// database; every test runs inside a transaction that is rolled back.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"authorshaven/models"
	"authorshaven/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_MYSQL_DSN")

var (
	dbOnce sync.Once
	db     *gorm.DB
	dbErr  error
)

func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_MYSQL_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		db, dbErr = gorm.Open(mysql.Open(dsn), &gorm.Config{
			TranslateError: true,
			Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}

		if dbErr = db.AutoMigrate(
			&models.User{},
			&models.Article{},
			&models.Comment{},
			&models.Like{},
			&models.Category{},
			&models.Tag{},
		); dbErr != nil {
			return
		}

		// Keep article and comment id spaces disjoint, matching the
		// production migration.
		dbErr = db.Exec("ALTER TABLE comments AUTO_INCREMENT = 1000000000").Error
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_MYSQL_DSN to run integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return db
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *models.User {
	tb.Helper()
	u := &models.User{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedArticle(tb testing.TB, ctx context.Context, tx *gorm.DB, authorID uint, title string) *models.Article {
	tb.Helper()
	a := &models.Article{
		Slug:        utils.Slugify(title) + "-" + utils.UUIDFragment(),
		UUID:        utils.UUIDFragment(),
		Title:       title,
		Description: "a description of " + title,
		ArticleBody: "body of " + title,
		TagList:     "general",
		Image:       "https://example.com/image.png",
		ReadTime:    1,
		AuthorID:    authorID,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed article: %v", err)
	}
	return a
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, articleID, authorID uint, body string) *models.Comment {
	tb.Helper()
	c := &models.Comment{
		ArticleID: articleID,
		AuthorID:  authorID,
		Body:      body,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *models.Category {
	tb.Helper()
	c := &models.Category{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *models.Tag {
	tb.Helper()
	t := &models.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func AttachCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, articleID, categoryID uint) {
	tb.Helper()
	err := tx.WithContext(ctx).
		Exec("INSERT INTO article_categories (article_id, category_id) VALUES (?, ?)", articleID, categoryID).Error
	if err != nil {
		tb.Fatalf("attach category: %v", err)
	}
}

func AttachTag(tb testing.TB, ctx context.Context, tx *gorm.DB, articleID, tagID uint) {
	tb.Helper()
	err := tx.WithContext(ctx).
		Exec("INSERT INTO article_tags (article_id, tag_id) VALUES (?, ?)", articleID, tagID).Error
	if err != nil {
		tb.Fatalf("attach tag: %v", err)
	}
}

// UniqueName decorates a base name so fixtures don't collide across tests
// sharing the database.
func UniqueName(base string) string {
	return fmt.Sprintf("%s-%s", base, utils.UUIDFragment())
}
