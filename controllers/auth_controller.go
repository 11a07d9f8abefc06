package controllers

import (
	"errors"
	"net/http"
	"time"

	"authorshaven/global"
	"authorshaven/models"
	"authorshaven/services"
	"authorshaven/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const tokenLifetime = 72 * time.Hour

type registerRequest struct {
	User struct {
		Firstname string `json:"firstname" binding:"required"`
		Lastname  string `json:"lastname" binding:"required"`
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
	} `json:"user"`
}

type loginRequest struct {
	User struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	} `json:"user"`
}

type authResponse struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

func Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	hashed, err := utils.HashPassword(req.User.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user := models.User{
		Firstname: req.User.Firstname,
		Lastname:  req.User.Lastname,
		Username:  req.User.Username,
		Email:     req.User.Email,
		Password:  hashed,
	}
	if err := global.Db.WithContext(ctx.Request.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.ErrorStat(ctx, http.StatusConflict, "username or email already exists")
			return
		}
		respondError(ctx, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.SuccessStat(ctx, http.StatusCreated, "user", authResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
	})
}

func Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorStat(ctx, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	err := global.Db.WithContext(ctx.Request.Context()).
		Where("email = ?", req.User.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.CheckPassword(req.User.Password, user.Password)) {
		utils.ErrorStat(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.SuccessStat(ctx, http.StatusOK, "user", authResponse{
		ID:        user.ID,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
	})
}

// Logout revokes the presented token for the rest of its lifetime.
func Logout(ctx *gin.Context) {
	token := ctx.GetString("token")
	if err := services.BlacklistToken(token, tokenLifetime); err != nil {
		respondError(ctx, err)
		return
	}
	utils.SuccessStat(ctx, http.StatusOK, "message", "Logged out successfully")
}
