package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/logic"
	"gorm.io/gorm"
)

// AdminHandler 管理端接口
type AdminHandler struct {
	adminLogic *logic.AdminLogic
}

// NewAdminHandler 创建管理端接口
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		adminLogic: logic.NewAdminLogic(db),
	}
}

// GetStats 获取平台统计
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminLogic.GetPlatformStats()
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取统计成功", stats)
}

// GetAllDonations 获取全部捐赠记录
func (h *AdminHandler) GetAllDonations(c *gin.Context) {
	donations, err := h.adminLogic.GetAllDonations()
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取捐赠记录成功", donations)
}
