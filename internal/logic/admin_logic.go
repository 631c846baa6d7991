package logic

import (
	"sync"
	"time"

	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

// AdminLogic 管理端统计业务逻辑
type AdminLogic struct {
	db *gorm.DB
}

// NewAdminLogic 创建管理端统计业务逻辑
func NewAdminLogic(db *gorm.DB) *AdminLogic {
	return &AdminLogic{db: db}
}

// PlatformStats 平台统计
type PlatformStats struct {
	TotalRaised    float64 `json:"totalRaised"`
	TotalDonors    int64   `json:"totalDonors"`
	TotalCampaigns int64   `json:"totalCampaigns"`
	TotalDonations int64   `json:"totalDonations"`
}

// AdminDonationRow 管理端捐赠记录，带捐赠人和活动信息
type AdminDonationRow struct {
	Id            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UserId        int64     `json:"user_id"`
	DonorName     string    `json:"donor_name"`
	DonorEmail    string    `json:"donor_email"`
	CampaignId    int64     `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
}

// GetPlatformStats 获取平台统计
// 四个聚合读并发执行，各自是时点快照，不保证相互一致
func (l *AdminLogic) GetPlatformStats() (*PlatformStats, error) {
	var stats PlatformStats
	var errs [4]error
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		errs[0] = l.db.Model(&model.Donation{}).
			Where("payment_status = ?", model.PaymentStatusCompleted).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&stats.TotalRaised).Error
	}()
	go func() {
		defer wg.Done()
		errs[1] = l.db.Model(&model.Donation{}).
			Where("payment_status = ?", model.PaymentStatusCompleted).
			Distinct("user_id").
			Count(&stats.TotalDonors).Error
	}()
	go func() {
		defer wg.Done()
		errs[2] = l.db.Model(&model.Campaign{}).Count(&stats.TotalCampaigns).Error
	}()
	go func() {
		defer wg.Done()
		errs[3] = l.db.Model(&model.Donation{}).Count(&stats.TotalDonations).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

// GetAllDonations 获取全部捐赠记录，按时间倒序，无分页
func (l *AdminLogic) GetAllDonations() ([]AdminDonationRow, error) {
	rows := make([]AdminDonationRow, 0)
	err := l.db.Table("donations AS d").
		Select(`d.id, d.amount, d.payment_status, d.created_at,
			u.id AS user_id, u.name AS donor_name, u.email AS donor_email,
			c.id AS campaign_id, c.title AS campaign_title`).
		Joins("JOIN users u ON d.user_id = u.id").
		Joins("JOIN campaigns c ON d.campaign_id = c.id").
		Order("d.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
