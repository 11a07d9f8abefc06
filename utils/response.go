package utils

import "github.com/gin-gonic/gin"

// SuccessStat writes the uniform success envelope: the status code plus the
// payload under its named key, e.g. {"status": 200, "articles": [...]}.
func SuccessStat(ctx *gin.Context, status int, key string, data interface{}) {
	ctx.JSON(status, gin.H{"status": status, key: data})
}

// ErrorStat writes the uniform error envelope: the status code plus a list
// of human-readable messages, e.g. {"status": 400, "error": ["..."]}.
func ErrorStat(ctx *gin.Context, status int, messages ...string) {
	ctx.JSON(status, gin.H{"status": status, "error": messages})
}
