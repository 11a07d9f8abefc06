package services

import (
	"reflect"
	"testing"
)

func TestParseSearchCriteria(t *testing.T) {
	t.Run("number for categories fails before any query", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{Categories: float64(543234)})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got := err.Error(); got != "categories must be a string" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("number for tags and authorNames", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{Tags: float64(1)})
		if err == nil || err.Error() != "tags must be a string" {
			t.Fatalf("tags: got %v", err)
		}
		_, err = ParseSearchCriteria(SearchInput{AuthorNames: []interface{}{"a"}})
		if err == nil || err.Error() != "authorNames must be a string" {
			t.Fatalf("authorNames: got %v", err)
		}
	})

	t.Run("short searchQuery fails", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{SearchQuery: "a"})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got := err.Error(); got != "searchQuery length must be at least 2 characters long" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("whitespace-only searchQuery fails", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{SearchQuery: "  "})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got := err.Error(); got != "searchQuery length must be at least 2 characters long" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("padded single character fails", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{SearchQuery: " a "})
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("length counts runes, not bytes", func(t *testing.T) {
		if _, err := ParseSearchCriteria(SearchInput{SearchQuery: "日"}); !IsValidation(err) {
			t.Fatalf("single multibyte rune: expected validation error, got %v", err)
		}
		criteria, err := ParseSearchCriteria(SearchInput{SearchQuery: "日本"})
		if err != nil {
			t.Fatalf("two runes: unexpected error: %v", err)
		}
		if criteria.SearchQuery != "日本" {
			t.Fatalf("got %+v", criteria)
		}
	})

	t.Run("two-character searchQuery passes", func(t *testing.T) {
		criteria, err := ParseSearchCriteria(SearchInput{SearchQuery: "an"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if criteria.SearchQuery != "an" {
			t.Fatalf("got %+v", criteria)
		}
	})

	t.Run("all violations are collected", func(t *testing.T) {
		_, err := ParseSearchCriteria(SearchInput{
			SearchQuery: "a",
			Categories:  float64(1),
			Tags:        float64(2),
		})
		var ve *ValidationError
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		ve = err.(*ValidationError)
		if len(ve.Messages) != 3 {
			t.Fatalf("expected 3 messages, got %v", ve.Messages)
		}
	})

	t.Run("comma lists are split, trimmed and lower-cased", func(t *testing.T) {
		criteria, err := ParseSearchCriteria(SearchInput{
			SearchQuery: "React Hooks",
			Categories:  "Tech, Health ,fashion",
			Tags:        "react",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(criteria.Categories, []string{"tech", "health", "fashion"}) {
			t.Fatalf("categories: %v", criteria.Categories)
		}
		if !reflect.DeepEqual(criteria.Tags, []string{"react"}) {
			t.Fatalf("tags: %v", criteria.Tags)
		}
		if criteria.SearchQuery != "react hooks" {
			t.Fatalf("searchQuery: %q", criteria.SearchQuery)
		}
	})

	t.Run("absent filters impose no constraint", func(t *testing.T) {
		criteria, err := ParseSearchCriteria(SearchInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(criteria.Categories) != 0 || len(criteria.Tags) != 0 || len(criteria.AuthorNames) != 0 {
			t.Fatalf("got %+v", criteria)
		}
	})
}
