package handler

import (
	"Hive_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendCode 按scope（register/reset）发送验证码
func (h *EmailHandler) SendCode(c *gin.Context) {
	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	scope := c.Param("scope")
	if err := h.svc.SendCode(c.Request.Context(), scope, req.Email); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"sent": true})
}
