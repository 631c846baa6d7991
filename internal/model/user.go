package model

import (
	"time"
)

// User 用户模型
type User struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	// 基本信息
	Name  string `json:"name" gorm:"not null" binding:"required"`
	Email string `json:"email" gorm:"uniqueIndex;not null" binding:"required"`

	// 凭证，不返回给客户端
	PasswordHash string `json:"-" gorm:"not null"`

	// 角色
	Role UserRole `json:"role" gorm:"default:'donor'"`

	// 关联
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:UserId"`
}

// UserRole 用户角色
type UserRole string

const (
	UserRoleDonor UserRole = "donor" // 捐赠者
	UserRoleAdmin UserRole = "admin" // 管理员
)
