package handler

import (
	"net/http"

	"Hive_Social/internal/pkg"

	"github.com/gin-gonic/gin"
)

// Success 统一成功响应
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Fail 统一失败响应，业务错误带自己的状态码，其余按存储故障处理
func Fail(c *gin.Context, err error) {
	if ae, ok := pkg.AsAppError(err); ok {
		c.JSON(ae.Status, gin.H{"success": false, "error": ae})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   &pkg.AppError{Code: pkg.CodeStore, Message: err.Error()},
	})
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, pkg.Validation(msg))
}
