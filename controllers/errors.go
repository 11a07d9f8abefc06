package controllers

import (
	"errors"
	"net/http"

	"authorshaven/global"
	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the uniform envelope. Anything
// that is neither a not-found nor a validation failure is a storage-side
// fault: logged, reported as a 500, never retried here.
func respondError(ctx *gin.Context, err error) {
	var nf *services.NotFoundError
	var ve *services.ValidationError
	switch {
	case errors.As(err, &nf):
		utils.ErrorStat(ctx, http.StatusNotFound, nf.Message)
	case errors.As(err, &ve):
		utils.ErrorStat(ctx, http.StatusBadRequest, ve.Messages...)
	default:
		global.Log.Errorw("request failed", "path", ctx.FullPath(), "error", err)
		utils.ErrorStat(ctx, http.StatusInternalServerError, "something went wrong, please try again")
	}
}

func currentUserID(ctx *gin.Context) uint {
	return ctx.GetUint("userID")
}
