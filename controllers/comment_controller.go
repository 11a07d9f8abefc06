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

type commentRequest struct {
	Comment struct {
		Body string `json:"body" binding:"required"`
	} `json:"comment"`
}

func CreateComment(ctx *gin.Context) {
	var req commentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := services.CreateComment(ctx.Request.Context(), global.Db,
		ctx.Param("slug"), currentUserID(ctx), req.Comment.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusCreated, "comment", comment)
}

func GetComments(ctx *gin.Context) {
	var article models.Article
	err := global.Db.WithContext(ctx.Request.Context()).Select("id").
		Where("slug = ?", ctx.Param("slug")).First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.ErrorStat(ctx, http.StatusNotFound, "Article not found")
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	comments, err := services.CommentsWithCounts(ctx.Request.Context(), global.Db, article.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "comments", gin.H{
		"comments":     comments,
		"noOfComments": len(comments),
	})
}
