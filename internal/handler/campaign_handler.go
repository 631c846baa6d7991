package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/logic"
	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

// CampaignHandler 活动接口
type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

// NewCampaignHandler 创建活动接口
func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		campaignLogic: logic.NewCampaignLogic(db),
	}
}

// GetCampaigns 获取活动列表
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")
	// 非法的分页参数回退到默认值，不报错
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil {
		limit = 6
	}

	campaigns, total, totalPages, err := h.campaignLogic.GetCampaigns(search, category, page, limit)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
	ListSuccessResponse(c, "获取活动列表成功", campaigns, total, totalPages, page)
}

// GetCategories 获取全部分类
func (h *CampaignHandler) GetCategories(c *gin.Context) {
	categories, err := h.campaignLogic.GetCategories()
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取分类成功", categories)
}

// GetCampaign 获取活动详情
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	campaign, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动成功", campaign)
}

// CreateCampaign 创建活动（管理员）
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	campaign := model.Campaign{
		Title:       req.Title,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}

	if err := h.campaignLogic.CreateCampaign(&campaign); err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", campaign)
}

// UpdateCampaign 部分更新活动（管理员）
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	// 只收集提供了的字段，缺失表示不修改
	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.GoalAmount != nil {
		updates["goal_amount"] = *req.GoalAmount
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}

	campaign, err := h.campaignLogic.UpdateCampaign(id, updates)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动更新成功", campaign)
}

// DeleteCampaign 删除活动（管理员）
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	if err := h.campaignLogic.DeleteCampaign(id); err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动删除成功", nil)
}
