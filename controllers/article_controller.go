package controllers

import (
	"errors"
	"net/http"

	"authorshaven/global"
	"authorshaven/models"
	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createArticleRequest struct {
	Article struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		ArticleBody string `json:"articleBody" binding:"required"`
		TagList     string `json:"tagList" binding:"required"`
		Image       string `json:"image" binding:"required"`
	} `json:"article"`
}

type editArticleRequest struct {
	Article services.ArticleInput `json:"article"`
}

func CreateArticle(ctx *gin.Context) {
	var req createArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	userID := currentUserID(ctx)
	var author models.User
	err := global.Db.WithContext(ctx.Request.Context()).First(&author, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorStat(ctx, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	article, err := services.CreateArticle(ctx.Request.Context(), global.Db, userID, services.ArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		ArticleBody: req.Article.ArticleBody,
		TagList:     req.Article.TagList,
		Image:       req.Article.Image,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.SuccessStat(ctx, http.StatusCreated, "articles", article)
}

// GetAllArticles serves the listing path. With a searchQuery it becomes a
// discovery call over the same result shape; with page/limit it applies
// the shared pagination boundary rule; with neither it returns everything.
func GetAllArticles(ctx *gin.Context) {
	pageReq, err := services.ParsePageRequest(ctx.Query("page"), ctx.Query("limit"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	if searchQuery := ctx.Query("searchQuery"); searchQuery != "" {
		criteria, err := services.ParseSearchCriteria(services.SearchInput{SearchQuery: searchQuery})
		if err != nil {
			respondError(ctx, err)
			return
		}
		respondSearch(ctx, criteria, pageReq)
		return
	}

	paged, all, err := services.ListArticles(ctx.Request.Context(), global.Db, pageReq)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if paged != nil {
		utils.SuccessStat(ctx, http.StatusOK, "articles", paged)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "articles", all)
}

func GetOneArticle(ctx *gin.Context) {
	view, err := services.GetArticle(ctx.Request.Context(), global.Db, ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "article", view)
}

func EditArticle(ctx *gin.Context) {
	var req editArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	article, err := services.EditArticle(ctx.Request.Context(), global.Db,
		ctx.Param("slug"), currentUserID(ctx), req.Article)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "article", article)
}

func DeleteArticle(ctx *gin.Context) {
	err := services.DeleteArticle(ctx.Request.Context(), global.Db,
		ctx.Param("slug"), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "message", "Article deleted successfully")
}
