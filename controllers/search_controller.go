package controllers

import (
	"errors"
	"io"
	"net/http"

	"authorshaven/global"
	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
)

// SearchArticles is the filtered discovery endpoint: free text comes from
// the query string, the value-list filters from the body. All validation
// runs before the store is touched.
func SearchArticles(ctx *gin.Context) {
	var input services.SearchInput
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorStat(ctx, http.StatusBadRequest, "invalid request body")
		return
	}
	input.SearchQuery = ctx.Query("searchQuery")

	criteria, err := services.ParseSearchCriteria(input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	pageReq, err := services.ParsePageRequest(ctx.Query("page"), ctx.Query("limit"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondSearch(ctx, criteria, pageReq)
}

// respondSearch runs the discovery query and shapes the payload: an
// unpaginated call answers with {count, rows}, a paginated one with the
// listing's {count, data, page, limit} shape.
func respondSearch(ctx *gin.Context, criteria services.SearchCriteria, pageReq *services.PageRequest) {
	result, err := services.Search(ctx.Request.Context(), global.Db, criteria, pageReq)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if pageReq != nil {
		utils.SuccessStat(ctx, http.StatusOK, "articles", services.PagedArticles{
			Count: result.Count,
			Page:  pageReq.Page,
			Limit: pageReq.Limit,
			Data:  result.Rows,
		})
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "articles", result)
}
