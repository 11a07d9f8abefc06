package services

import "testing"

func TestParsePageRequest(t *testing.T) {
	t.Run("both absent means unpaginated", func(t *testing.T) {
		req, err := ParsePageRequest("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req != nil {
			t.Fatalf("expected nil PageRequest, got %+v", req)
		}
	})

	t.Run("limit only defaults page to 1", func(t *testing.T) {
		req, err := ParsePageRequest("", "5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Page != 1 || req.Limit != 5 {
			t.Fatalf("got %+v", req)
		}
	})

	t.Run("page only applies default limit", func(t *testing.T) {
		req, err := ParsePageRequest("3", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Page != 3 || req.Limit != DefaultPageLimit {
			t.Fatalf("got %+v", req)
		}
	})

	t.Run("non-numeric limit fails validation", func(t *testing.T) {
		_, err := ParsePageRequest("", "erwer")
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got := err.Error(); got != "limit must be a number" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("non-numeric page fails validation", func(t *testing.T) {
		_, err := ParsePageRequest("abc", "10")
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got := err.Error(); got != "page must be a number" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("zero or negative values fail validation", func(t *testing.T) {
		if _, err := ParsePageRequest("0", ""); !IsValidation(err) {
			t.Fatalf("page=0: expected validation error, got %v", err)
		}
		if _, err := ParsePageRequest("", "-1"); !IsValidation(err) {
			t.Fatalf("limit=-1: expected validation error, got %v", err)
		}
	})
}

func TestPaginate(t *testing.T) {
	t.Run("offset math", func(t *testing.T) {
		page, err := Paginate(30, &PageRequest{Page: 3, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Offset != 20 || page.Limit != 10 {
			t.Fatalf("got %+v", page)
		}
	})

	t.Run("page past the last record is not found", func(t *testing.T) {
		_, err := Paginate(5, &PageRequest{Page: 2, Limit: 10})
		if !IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("offset equal to total is not found", func(t *testing.T) {
		_, err := Paginate(10, &PageRequest{Page: 2, Limit: 10})
		if !IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("empty collection is not an out-of-range page", func(t *testing.T) {
		page, err := Paginate(0, &PageRequest{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Offset != 0 || page.Limit != 10 {
			t.Fatalf("got %+v", page)
		}
	})

	t.Run("last partial page is served", func(t *testing.T) {
		page, err := Paginate(11, &PageRequest{Page: 2, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Offset != 10 {
			t.Fatalf("got %+v", page)
		}
	})
}
