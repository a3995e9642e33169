package handler

import (
	"Hive_Social/internal/middleware"
	"Hive_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendHandler struct {
	svc *service.FriendService
}

type sendRequestReq struct {
	Username string `json:"username" binding:"required"`
}

type requestIDReq struct {
	RequestID uint64 `json:"request_id" binding:"required"`
}

func NewFriendHandler(svc *service.FriendService) *FriendHandler {
	return &FriendHandler{svc: svc}
}

// SendRequest 按用户名发好友申请
func (h *FriendHandler) SendRequest(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req sendRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	fr, err := h.svc.SendRequest(c.Request.Context(), userID, req.Username)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, fr)
}

func (h *FriendHandler) Accept(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req requestIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	fs, err := h.svc.AcceptRequest(c.Request.Context(), req.RequestID, userID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, fs)
}

func (h *FriendHandler) Reject(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req requestIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	if err := h.svc.RejectRequest(c.Request.Context(), req.RequestID, userID); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"rejected": true})
}

// Cancel 发送者撤回pending申请
func (h *FriendHandler) Cancel(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req requestIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	if err := h.svc.CancelRequest(c.Request.Context(), req.RequestID, userID); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"cancelled": true})
}

func (h *FriendHandler) List(c *gin.Context) {
	userID := userIDFromCtx(c)

	views, err := h.svc.ListFriends(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, views)
}

func (h *FriendHandler) Incoming(c *gin.Context) {
	userID := userIDFromCtx(c)

	views, err := h.svc.ListIncoming(c.Request.Context(), userID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, views)
}

// Status 查和某个用户的关系
func (h *FriendHandler) Status(c *gin.Context) {
	userID := userIDFromCtx(c)
	username := c.Query("username")
	if username == "" {
		BadRequest(c, "username required")
		return
	}

	status, err := h.svc.FriendshipStatus(c.Request.Context(), userID, username)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"status": status})
}

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
