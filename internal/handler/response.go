package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/logger"
	"github.com/mobashirsifat123/charity/internal/logic"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// 列表响应结构，带分页信息
type ListResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// ListSuccessResponse 列表成功响应
func ListSuccessResponse(c *gin.Context, message string, data interface{}, total, totalPages int64, currentPage int) {
	c.JSON(http.StatusOK, ListResponse{
		Success:     true,
		Message:     message,
		Data:        data,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	})
}

// HandleLogicError 将业务错误映射为HTTP状态码
// 未识别的错误一律返回500和通用消息，内部细节只记日志
func HandleLogicError(c *gin.Context, err error) {
	var validationErr *logic.ValidationError
	var paymentErr *logic.PaymentError
	var notCompletedErr *logic.PaymentNotCompletedError
	switch {
	case errors.As(err, &validationErr):
		ErrorResponse(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notCompletedErr):
		// 附带提供方上报的支付状态，前端据此提示用户
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": notCompletedErr.Error(),
			"status":  notCompletedErr.Status,
		})
	case errors.As(err, &paymentErr):
		// 提供方错误消息透传给客户端
		logger.Error("Payment provider error on %s %s: %v", c.Request.Method, c.Request.URL.Path, paymentErr.Err)
		ErrorResponse(c, http.StatusInternalServerError, paymentErr.Message)
	case errors.Is(err, logic.ErrCampaignNotFound),
		errors.Is(err, logic.ErrDonationNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrDuplicateEmail),
		errors.Is(err, logic.ErrCampaignHasDonations):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, logic.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, logic.ErrPaymentNotCompleted):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		ErrorResponse(c, http.StatusInternalServerError, "服务器内部错误")
	}
}
