package handler

import (
	"time"

	"github.com/mobashirsifat123/charity/internal/model"
)

// 请求模型

// RegisterRequest 注册请求
// role字段被接受但忽略，注册只产生donor
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateCampaignRequest 创建活动请求
type CreateCampaignRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goal_amount"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

// UpdateCampaignRequest 更新活动请求，未提供的字段不变
type UpdateCampaignRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	GoalAmount  *float64 `json:"goal_amount"`
	ImageURL    *string  `json:"image_url"`
	Category    *string  `json:"category"`
}

// CreateDonationRequest 直接捐赠请求
type CreateDonationRequest struct {
	CampaignId int64   `json:"campaign_id"`
	Amount     float64 `json:"amount"`
}

// CreateCheckoutSessionRequest 创建支付会话请求
type CreateCheckoutSessionRequest struct {
	Amount        float64 `json:"amount"`
	CampaignId    int64   `json:"campaignId"`
	CampaignTitle string  `json:"campaignTitle"`
}

// VerifyDonationRequest 支付对账请求
type VerifyDonationRequest struct {
	SessionId string `json:"sessionId"`
}

// 响应模型

// UserResponse 用户响应，不含凭证
type UserResponse struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// CheckoutSessionResponse 支付会话响应
type CheckoutSessionResponse struct {
	SessionId string `json:"sessionId"`
	URL       string `json:"url"`
}

// ToUserResponse 将用户模型转换为响应模型
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
