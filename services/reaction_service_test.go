package services

import (
	"context"
	"testing"

	"authorshaven/models"
	"authorshaven/testutil"
)

func TestReactToggleCycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	author := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("author"))
	reader := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("reader"))
	article := testutil.SeedArticle(t, ctx, tx, author.ID, "Toggle cycle")

	steps := []struct {
		likes        bool
		wantLikes    int64
		wantDislikes int64
	}{
		{true, 1, 0},  // first like creates the row
		{true, 0, 0},  // repeating it undoes it
		{false, 0, 1}, // fresh dislike
		{true, 1, 0},  // opposite polarity flips in place
	}

	for i, step := range steps {
		counts, err := React(ctx, tx, models.ResourceArticle, article.ID, reader.ID, step.likes)
		if err != nil {
			t.Fatalf("step %d: React: %v", i, err)
		}
		if counts.Likes != step.wantLikes || counts.Dislikes != step.wantDislikes {
			t.Fatalf("step %d: got %+v, want {%d %d}", i, counts, step.wantLikes, step.wantDislikes)
		}
	}

	var rows int64
	if err := tx.Model(&models.Like{}).
		Where("resource_id = ?", article.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected a single ledger row, got %d", rows)
	}
}

func TestReactFlipKeepsTotal(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	author := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("author"))
	article := testutil.SeedArticle(t, ctx, tx, author.ID, "Flip totals")

	alice := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("alice"))
	bob := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("bob"))

	if _, err := React(ctx, tx, models.ResourceArticle, article.ID, alice.ID, true); err != nil {
		t.Fatalf("alice like: %v", err)
	}
	if _, err := React(ctx, tx, models.ResourceArticle, article.ID, bob.ID, true); err != nil {
		t.Fatalf("bob like: %v", err)
	}

	counts, err := React(ctx, tx, models.ResourceArticle, article.ID, alice.ID, false)
	if err != nil {
		t.Fatalf("alice flip: %v", err)
	}
	if counts.Likes != 1 || counts.Dislikes != 1 {
		t.Fatalf("got %+v, want {1 1}", counts)
	}
	if counts.Likes+counts.Dislikes != 2 {
		t.Fatalf("flip changed the total reaction count: %+v", counts)
	}
}

func TestReactOnComment(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	author := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("author"))
	article := testutil.SeedArticle(t, ctx, tx, author.ID, "Comment reactions")
	comment := testutil.SeedComment(t, ctx, tx, article.ID, author.ID, "first!")

	counts, err := React(ctx, tx, models.ResourceComment, comment.ID, author.ID, true)
	if err != nil {
		t.Fatalf("React: %v", err)
	}
	if counts.Likes != 1 || counts.Dislikes != 0 {
		t.Fatalf("got %+v", counts)
	}
}

func TestReactMissingResource(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("user"))

	_, err := React(ctx, tx, models.ResourceArticle, 999999999, user.ID, true)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	// The failed call must not have written anything.
	var rows int64
	if err := tx.Model(&models.Like{}).
		Where("user_id = ?", user.ID).Count(&rows).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected no ledger rows, got %d", rows)
	}
}

func TestReactInvalidType(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, testutil.UniqueName("user"))

	_, err := React(ctx, tx, "recipe", 1, user.ID, true)
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
