package handler

import (
	"strconv"

	"Hive_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	svc *service.MessageService
}

type messageCreateReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) Create(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req messageCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	msg, err := h.svc.CreateMessage(c.Request.Context(), userID, req.CommunityID, req.Content)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, msg)
}

func (h *MessageHandler) ListByCommunity(c *gin.Context) {
	communityID, _ := strconv.ParseUint(c.Query("community_id"), 10, 64)
	if communityID == 0 {
		BadRequest(c, "community_id required")
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListByCommunity(c.Request.Context(), communityID, page, size)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, list)
}
