package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/logic"
	"github.com/mobashirsifat123/charity/internal/middleware"
	"github.com/mobashirsifat123/charity/internal/payment"
	"gorm.io/gorm"
)

// PaymentHandler 支付接口
type PaymentHandler struct {
	paymentLogic *logic.PaymentLogic
}

// NewPaymentHandler 创建支付接口
func NewPaymentHandler(db *gorm.DB, provider payment.Provider) *PaymentHandler {
	return &PaymentHandler{
		paymentLogic: logic.NewPaymentLogic(db, provider),
	}
}

// CreateCheckoutSession 创建托管支付会话
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		ErrorResponse(c, http.StatusUnauthorized, "需要身份认证")
		return
	}

	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	session, err := h.paymentLogic.CreateCheckoutSession(claims.Id, req.CampaignId, req.CampaignTitle, req.Amount)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "支付会话创建成功", CheckoutSessionResponse{
		SessionId: session.Id,
		URL:       session.URL,
	})
}

// VerifyDonation 对账：确认支付完成并落账
// 同一会话的重复请求返回已记录的捐赠
func (h *PaymentHandler) VerifyDonation(c *gin.Context) {
	var req VerifyDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	donation, alreadyRecorded, err := h.paymentLogic.VerifyDonation(req.SessionId)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	message := "捐赠已确认并记录"
	if alreadyRecorded {
		message = "捐赠已记录"
	}
	SuccessResponse(c, http.StatusOK, message, donation)
}
