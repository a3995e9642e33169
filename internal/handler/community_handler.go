package handler

import (
	"strconv"

	"Hive_Social/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CommunityCreateReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
}

type communityIDReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
}

type removeMemberReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	UserID      uint64 `json:"user_id" binding:"required"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	community, err := h.svc.CreateCommunity(c.Request.Context(), userID, req.Name, req.Description, req.Category, req.Color)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, community)
}

func (h *CommunityHandler) Join(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req communityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	m, err := h.svc.JoinCommunity(c.Request.Context(), userID, req.CommunityID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, m)
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req communityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	if err := h.svc.LeaveCommunity(c.Request.Context(), userID, req.CommunityID); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"left": true})
}

func (h *CommunityHandler) RemoveMember(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req removeMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	if err := h.svc.RemoveMember(c.Request.Context(), req.CommunityID, req.UserID, userID); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"removed": true})
}

func (h *CommunityHandler) Delete(c *gin.Context) {
	userID := userIDFromCtx(c)

	var req communityIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid params")
		return
	}

	if err := h.svc.DeleteCommunity(c.Request.Context(), req.CommunityID, userID); err != nil {
		Fail(c, err)
		return
	}

	Success(c, gin.H{"deleted": true})
}

func (h *CommunityHandler) Members(c *gin.Context) {
	userID := userIDFromCtx(c)
	communityID, _ := strconv.ParseUint(c.Query("community_id"), 10, 64)
	if communityID == 0 {
		BadRequest(c, "community_id required")
		return
	}

	views, err := h.svc.ListMembers(c.Request.Context(), communityID, userID)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, views)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListCommunities(c.Request.Context(), page, size)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, list)
}
