package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/mobashirsifat123/charity/internal/config"
	"github.com/mobashirsifat123/charity/internal/logger"
	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
)

// DonationExpireJob 捐赠过期任务
// 把超时未对账的pending捐赠标记为failed；
// pending记录从未计入已筹金额，标记失败不涉及金额回退
type DonationExpireJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewDonationExpireJob 创建捐赠过期任务
func NewDonationExpireJob(db *gorm.DB, cfg *config.Config) *DonationExpireJob {
	return &DonationExpireJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *DonationExpireJob) GetName() string {
	return "donation_expirer"
}

// GetSchedule 获取调度配置
func (j *DonationExpireJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.DonationExpireMinutes) * time.Minute)
}

// Execute 执行任务
func (j *DonationExpireJob) Execute() {
	logger.Info("Starting donation expire task")

	cutoff := time.Now().Add(-time.Duration(j.config.Task.DonationExpireMinutes) * time.Minute)

	result := j.db.Model(&model.Donation{}).
		Where("payment_status = ? AND created_at < ?", model.PaymentStatusPending, cutoff).
		Update("payment_status", model.PaymentStatusFailed)
	if result.Error != nil {
		logger.Error("Failed to expire pending donations: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.Info("Donation expire task completed, %d donations marked failed", result.RowsAffected)
	}
}
