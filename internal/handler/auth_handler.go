package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mobashirsifat123/charity/internal/auth"
	"github.com/mobashirsifat123/charity/internal/logic"
	"gorm.io/gorm"
)

// AuthHandler 认证接口
type AuthHandler struct {
	userLogic *logic.UserLogic
}

// NewAuthHandler 创建认证接口
func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		userLogic: logic.NewUserLogic(db, tokens),
	}
}

// Register 注册新用户
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	// req.Role被有意忽略，注册不能产生管理员
	user, token, err := h.userLogic.Register(req.Name, req.Email, req.Password)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "注册成功", AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式不正确")
		return
	}

	user, token, err := h.userLogic.Login(req.Email, req.Password)
	if err != nil {
		HandleLogicError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "登录成功", AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	})
}
