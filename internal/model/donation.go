package model

import (
	"time"
)

// Donation 捐赠记录模型
type Donation struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// 归属
	UserId     int64 `json:"user_id" gorm:"index;not null"`
	CampaignId int64 `json:"campaign_id" gorm:"index;not null"`

	// 捐赠信息
	Amount        float64       `json:"amount" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"default:'pending'"`

	// 外部支付会话ID，存在时唯一，用于幂等对账
	StripeSessionId string `json:"stripe_session_id,omitempty" gorm:"uniqueIndex:idx_donation_session,where:stripe_session_id <> ''"`
}

// PaymentStatus 支付状态
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"   // 待支付
	PaymentStatusCompleted PaymentStatus = "completed" // 已完成
	PaymentStatusFailed    PaymentStatus = "failed"    // 失败
)
