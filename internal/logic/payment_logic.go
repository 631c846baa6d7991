package logic

import (
	"fmt"
	"strconv"

	"github.com/mobashirsifat123/charity/internal/model"
	"github.com/mobashirsifat123/charity/internal/payment"
	"gorm.io/gorm"
)

// PaymentLogic 支付对账业务逻辑
// 连接外部托管支付提供方与捐赠账本
type PaymentLogic struct {
	db        *gorm.DB
	provider  payment.Provider
	donations *DonationLogic
}

// NewPaymentLogic 创建支付对账业务逻辑
func NewPaymentLogic(db *gorm.DB, provider payment.Provider) *PaymentLogic {
	return &PaymentLogic{
		db:        db,
		provider:  provider,
		donations: NewDonationLogic(db),
	}
}

// CreateCheckoutSession 创建托管支付会话，返回会话ID和跳转地址
func (l *PaymentLogic) CreateCheckoutSession(userId, campaignId int64, campaignTitle string, amount float64) (*payment.CheckoutSession, error) {
	if amount <= 0 {
		return nil, NewValidationError("捐赠金额必须大于0")
	}
	if campaignId == 0 {
		return nil, NewValidationError("活动ID不能为空")
	}

	session, err := l.provider.CreateCheckoutSession(payment.CreateSessionInput{
		Amount:        amount,
		CampaignId:    campaignId,
		CampaignTitle: campaignTitle,
		UserId:        userId,
	})
	if err != nil {
		return nil, NewPaymentError(err)
	}
	return session, nil
}

// VerifyDonation 对账：确认会话已支付并将捐赠恰好一次落账
// 同一会话的重复对账返回已记录的捐赠，不重复累加已筹金额；
// 幂等性以会话ID唯一约束为键
func (l *PaymentLogic) VerifyDonation(sessionId string) (*model.Donation, bool, error) {
	if sessionId == "" {
		return nil, false, NewValidationError("会话ID不能为空")
	}

	session, err := l.provider.GetCheckoutSession(sessionId)
	if err != nil {
		return nil, false, NewPaymentError(err)
	}

	if session.PaymentStatus != payment.PaymentStatusPaid {
		return nil, false, &PaymentNotCompletedError{Status: session.PaymentStatus}
	}

	// 幂等检查：该会话是否已落账
	existing, err := l.donations.GetDonationBySessionId(sessionId)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	campaignId, userId, amount, err := parseSessionMetadata(session.Metadata)
	if err != nil {
		return nil, false, err
	}

	return l.recordVerifiedDonation(sessionId, campaignId, userId, amount)
}

// recordVerifiedDonation 落账已支付的会话
// 并发的首次对账可能同时通过幂等检查，落败方撞上会话ID唯一索引；
// 此时改读对方已落账的记录，账本仍然只记一次
func (l *PaymentLogic) recordVerifiedDonation(sessionId string, campaignId, userId int64, amount float64) (*model.Donation, bool, error) {
	donation, err := l.donations.CreateDonationWithSession(
		userId, campaignId, amount, model.PaymentStatusCompleted, sessionId)
	if err != nil {
		existing, lookupErr := l.donations.GetDonationBySessionId(sessionId)
		if lookupErr == nil && existing != nil {
			return existing, true, nil
		}
		return nil, false, err
	}

	return donation, false, nil
}

// parseSessionMetadata 读取创建会话时写入的业务元数据
func parseSessionMetadata(metadata map[string]string) (campaignId, userId int64, amount float64, err error) {
	campaignId, err = strconv.ParseInt(metadata["campaignId"], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("会话元数据缺少有效的活动ID: %w", err)
	}
	userId, err = strconv.ParseInt(metadata["userId"], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("会话元数据缺少有效的用户ID: %w", err)
	}
	amount, err = strconv.ParseFloat(metadata["amount"], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("会话元数据缺少有效的金额: %w", err)
	}
	return campaignId, userId, amount, nil
}
