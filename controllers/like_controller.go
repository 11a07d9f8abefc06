package controllers

import (
	"net/http"
	"strconv"
	"time"

	"authorshaven/global"
	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
)

type likeRequest struct {
	Liked struct {
		Liked string `json:"liked" binding:"required"`
		Type  string `json:"type" binding:"required"`
	} `json:"liked"`
}

// LikeOrDislikeResource toggles the caller's reaction on an article or
// comment and answers with the refreshed counts. Repeating a reaction
// undoes it; sending the opposite one flips it.
func LikeOrDislikeResource(ctx *gin.Context) {
	resourceID, err := strconv.ParseUint(ctx.Param("resourceId"), 10, 64)
	if err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, "resourceId must be a number")
		return
	}

	var req likeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var likes bool
	switch req.Liked.Liked {
	case "true":
		likes = true
	case "false":
		likes = false
	default:
		utils.ErrorStat(ctx, http.StatusBadRequest, "liked must be either true or false")
		return
	}

	userID := currentUserID(ctx)

	counts, err := services.React(ctx.Request.Context(), global.Db,
		req.Liked.Type, uint(resourceID), userID, likes)
	if err != nil {
		respondError(ctx, err)
		return
	}

	services.PublishReactionEvent(services.ReactionEvent{
		ResourceType: req.Liked.Type,
		ResourceID:   uint(resourceID),
		UserID:       userID,
		Likes:        likes,
		Counts:       counts,
		OccurredAt:   time.Now().UTC(),
	})

	utils.SuccessStat(ctx, http.StatusOK, req.Liked.Type+" Likes", counts)
}
