package logic

import (
	"errors"
	"regexp"

	"github.com/mobashirsifat123/charity/internal/auth"
	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

// 邮箱格式：本地部分 @ 带点的域名部分
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserLogic 用户业务逻辑
type UserLogic struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

// NewUserLogic 创建用户业务逻辑
func NewUserLogic(db *gorm.DB, tokens *auth.TokenManager) *UserLogic {
	return &UserLogic{db: db, tokens: tokens}
}

// Register 注册新用户，返回用户和签发的令牌
// 注册时角色强制为donor，请求中的admin会被静默降级，
// 管理员只能由运维直接在存储中设置
func (u *UserLogic) Register(name, email, password string) (*model.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", NewValidationError("姓名、邮箱和密码不能为空")
	}
	if !emailPattern.MatchString(email) {
		return nil, "", NewValidationError("邮箱格式不正确")
	}
	if len(password) < 6 {
		return nil, "", NewValidationError("密码长度不能少于6位")
	}

	// 检查邮箱是否已注册（区分大小写）
	var existing model.User
	err := u.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.UserRoleDonor,
	}
	if err := u.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Generate(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login 用户登录，返回用户和签发的令牌
// 用户不存在与密码错误返回同一错误，避免用户枚举
func (u *UserLogic) Login(email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", NewValidationError("邮箱和密码不能为空")
	}

	var user model.User
	if err := u.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
