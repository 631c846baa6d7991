package model

import (
	"time"
)

// Campaign 募捐活动模型
type Campaign struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`

	// 募捐信息
	GoalAmount float64 `json:"goal_amount" gorm:"not null"`
	// raised_amount 是所有 completed 状态捐赠金额的累加值，
	// 由捐赠完成时的增量更新维护，不从账本重算
	RaisedAmount float64 `json:"raised_amount" gorm:"default:0"`

	// 关联
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:CampaignId"`
}
