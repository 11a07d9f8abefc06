package services

import "strconv"

// DefaultPageLimit applies when a caller supplies a page but no limit.
const DefaultPageLimit = 10

// PageRequest is the parsed pagination input. A nil *PageRequest means the
// caller omitted both page and limit and wants the full, unpaginated set.
type PageRequest struct {
	Page  int
	Limit int
}

// Page is the slice a PageRequest selects once the total is known.
type Page struct {
	Offset int
	Limit  int
}

// ParsePageRequest turns raw page/limit query values into an optional
// PageRequest. Empty strings count as absent; both absent means
// unpaginated. A value that is not a positive integer is a validation
// failure naming the field.
func ParsePageRequest(pageStr, limitStr string) (*PageRequest, error) {
	if pageStr == "" && limitStr == "" {
		return nil, nil
	}

	req := &PageRequest{Page: 1, Limit: DefaultPageLimit}
	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			return nil, NewValidationError("limit must be a number")
		}
		req.Limit = limit
	}
	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			return nil, NewValidationError("page must be a number")
		}
		req.Page = page
	}
	return req, nil
}

// Paginate computes the offset/limit window for a total count. A page whose
// offset lies at or past the last record is a not-found condition, except
// over an empty collection where page 1 of nothing is still page 1.
func Paginate(total int64, req *PageRequest) (Page, error) {
	offset := (req.Page - 1) * req.Limit
	if total > 0 && int64(offset) >= total {
		return Page{}, NewNotFoundError("page not found")
	}
	return Page{Offset: offset, Limit: req.Limit}, nil
}
