package logic

import (
	"errors"
	"strings"

	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 6
)

// CampaignLogic 活动业务逻辑
type CampaignLogic struct {
	db *gorm.DB
}

// NewCampaignLogic 创建活动业务逻辑
func NewCampaignLogic(db *gorm.DB) *CampaignLogic {
	return &CampaignLogic{db: db}
}

// GetCampaigns 获取活动列表，支持搜索、分类过滤和分页
// 按创建时间倒序，返回列表、总数和总页数
func (l *CampaignLogic) GetCampaigns(search, category string, page, limit int) ([]model.Campaign, int64, int64, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	filter := func(query *gorm.DB) *gorm.DB {
		// 标题或描述的大小写不敏感子串匹配
		if s := strings.TrimSpace(search); s != "" {
			pattern := "%" + strings.ToLower(s) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		// 分类精确匹配，"all"等同于不过滤
		if c := strings.TrimSpace(category); c != "" && c != "all" {
			query = query.Where("category = ?", c)
		}
		return query
	}

	var total int64
	if err := filter(l.db.Model(&model.Campaign{})).Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var campaigns []model.Campaign
	offset := (page - 1) * limit
	if err := filter(l.db.Model(&model.Campaign{})).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&campaigns).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return campaigns, total, totalPages, nil
}

// GetCampaign 获取活动详情
func (l *CampaignLogic) GetCampaign(id int64) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

// CreateCampaign 创建活动
func (l *CampaignLogic) CreateCampaign(campaign *model.Campaign) error {
	if campaign.Title == "" {
		return NewValidationError("活动标题不能为空")
	}
	if campaign.GoalAmount <= 0 {
		return NewValidationError("目标金额必须大于0")
	}

	// 已筹金额从0开始
	campaign.RaisedAmount = 0

	return l.db.Create(campaign).Error
}

// UpdateCampaign 部分更新活动，未提供的字段保持不变
func (l *CampaignLogic) UpdateCampaign(id int64, updates map[string]interface{}) (*model.Campaign, error) {
	if goal, ok := updates["goal_amount"]; ok {
		if amount, ok := goal.(float64); !ok || amount <= 0 {
			return nil, NewValidationError("目标金额必须大于0")
		}
	}

	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := l.db.Model(&campaign).Updates(updates).Error; err != nil {
			return nil, err
		}
		// 返回更新后的记录
		if err := l.db.First(&campaign, id).Error; err != nil {
			return nil, err
		}
	}

	return &campaign, nil
}

// DeleteCampaign 删除活动
// 存在已完成捐赠的活动不允许删除，捐赠账本不能悬空
func (l *CampaignLogic) DeleteCampaign(id int64) error {
	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}

	var completed int64
	if err := l.db.Model(&model.Donation{}).
		Where("campaign_id = ? AND payment_status = ?", id, model.PaymentStatusCompleted).
		Count(&completed).Error; err != nil {
		return err
	}
	if completed > 0 {
		return ErrCampaignHasDonations
	}

	return l.db.Delete(&campaign).Error
}

// GetCategories 获取所有非空分类，按字母序
func (l *CampaignLogic) GetCategories() ([]string, error) {
	var categories []string
	err := l.db.Model(&model.Campaign{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// AddRaisedAmount 对活动已筹金额做增量更新
// 依赖存储层的原子加法，对同一笔捐赠重复调用会重复计入
func (l *CampaignLogic) AddRaisedAmount(campaignId int64, amount float64) error {
	return addRaisedAmount(l.db, campaignId, amount)
}

func addRaisedAmount(tx *gorm.DB, campaignId int64, amount float64) error {
	return tx.Model(&model.Campaign{}).
		Where("id = ?", campaignId).
		Update("raised_amount", gorm.Expr("raised_amount + ?", amount)).Error
}
