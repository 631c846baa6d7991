package logic

import (
	"errors"
	"time"

	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

// DonationLogic 捐赠业务逻辑
type DonationLogic struct {
	db *gorm.DB
}

// NewDonationLogic 创建捐赠业务逻辑
func NewDonationLogic(db *gorm.DB) *DonationLogic {
	return &DonationLogic{db: db}
}

// UserDonationRow 用户捐赠记录，带活动标题
type UserDonationRow struct {
	Id            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	CampaignId    int64     `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
}

// CreatePendingDonation 创建一条pending状态的捐赠记录
func (l *DonationLogic) CreatePendingDonation(userId, campaignId int64, amount float64) (*model.Donation, error) {
	if campaignId == 0 {
		return nil, NewValidationError("活动ID不能为空")
	}
	if amount <= 0 {
		return nil, NewValidationError("捐赠金额必须大于0")
	}

	var campaign model.Campaign
	if err := l.db.First(&campaign, campaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	donation := model.Donation{
		UserId:        userId,
		CampaignId:    campaignId,
		Amount:        amount,
		PaymentStatus: model.PaymentStatusPending,
	}
	if err := l.db.Create(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// CreateDonation 直接捐赠路径：创建pending记录、标记完成、累加已筹金额
// 三步在同一事务内执行，避免账本与聚合值不一致；
// 该路径没有幂等保护，客户端重复提交会重复计入
func (l *DonationLogic) CreateDonation(userId, campaignId int64, amount float64) (*model.Donation, error) {
	if campaignId == 0 {
		return nil, NewValidationError("活动ID不能为空")
	}
	if amount <= 0 {
		return nil, NewValidationError("捐赠金额必须大于0")
	}

	// 检查活动是否存在
	var campaign model.Campaign
	if err := l.db.First(&campaign, campaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	donation := model.Donation{
		UserId:        userId,
		CampaignId:    campaignId,
		Amount:        amount,
		PaymentStatus: model.PaymentStatusPending,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		if err := tx.Model(&donation).Update("payment_status", model.PaymentStatusCompleted).Error; err != nil {
			return err
		}
		return addRaisedAmount(tx, campaignId, amount)
	})
	if err != nil {
		return nil, err
	}

	donation.PaymentStatus = model.PaymentStatusCompleted
	return &donation, nil
}

// CreateDonationWithSession 创建带外部支付会话ID的终态捐赠记录
// 仅由支付对账流程调用；completed状态的插入与金额累加在同一事务内
func (l *DonationLogic) CreateDonationWithSession(userId, campaignId int64, amount float64, status model.PaymentStatus, sessionId string) (*model.Donation, error) {
	donation := model.Donation{
		UserId:          userId,
		CampaignId:      campaignId,
		Amount:          amount,
		PaymentStatus:   status,
		StripeSessionId: sessionId,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		if status == model.PaymentStatusCompleted {
			return addRaisedAmount(tx, campaignId, amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &donation, nil
}

// GetDonationBySessionId 按外部会话ID查找捐赠记录，不存在时返回nil
func (l *DonationLogic) GetDonationBySessionId(sessionId string) (*model.Donation, error) {
	var donation model.Donation
	err := l.db.Where("stripe_session_id = ?", sessionId).First(&donation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donation, nil
}

// UpdatePaymentStatus 更新捐赠支付状态
func (l *DonationLogic) UpdatePaymentStatus(donationId int64, status model.PaymentStatus) error {
	result := l.db.Model(&model.Donation{}).
		Where("id = ?", donationId).
		Update("payment_status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

// GetDonationsByUser 获取用户的捐赠历史，按时间倒序，带活动标题
func (l *DonationLogic) GetDonationsByUser(userId int64) ([]UserDonationRow, error) {
	rows := make([]UserDonationRow, 0)
	err := l.db.Table("donations AS d").
		Select("d.id, d.amount, d.payment_status, d.created_at, c.id AS campaign_id, c.title AS campaign_title").
		Joins("JOIN campaigns c ON d.campaign_id = c.id").
		Where("d.user_id = ?", userId).
		Order("d.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
