package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/logic"
	"github.com/mobashirsifat123/charity/internal/middleware"
	"gorm.io/gorm"
)

// DonationHandler 捐赠接口
type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

// NewDonationHandler 创建捐赠接口
func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{
		donationLogic: logic.NewDonationLogic(db),
	}
}

// CreateDonation 直接捐赠（非Stripe路径）
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		ErrorResponse(c, http.StatusUnauthorized, "需要身份认证")
		return
	}

	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	donation, err := h.donationLogic.CreateDonation(claims.Id, req.CampaignId, req.Amount)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "捐赠成功", donation)
}

// GetMyDonations 获取当前用户的捐赠历史
func (h *DonationHandler) GetMyDonations(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		ErrorResponse(c, http.StatusUnauthorized, "需要身份认证")
		return
	}

	donations, err := h.donationLogic.GetDonationsByUser(claims.Id)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取捐赠记录成功", donations)
}
