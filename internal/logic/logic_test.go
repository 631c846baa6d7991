package logic

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mobashirsifat123/charity/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB 创建每个测试独立的sqlite数据库
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/charity.db"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Campaign{}, &model.Donation{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

// seedCampaign 插入一条活动记录
func seedCampaign(t *testing.T, db *gorm.DB, title, category string, goal float64) *model.Campaign {
	t.Helper()

	campaign := model.Campaign{
		Title:      title,
		Category:   category,
		GoalAmount: goal,
	}
	if err := db.Create(&campaign).Error; err != nil {
		t.Fatalf("seed campaign: %v", err)
	}
	return &campaign
}

// seedUser 插入一条用户记录
func seedUser(t *testing.T, db *gorm.DB, name, email string, role model.UserRole) *model.User {
	t.Helper()

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func raisedAmount(t *testing.T, db *gorm.DB, campaignId int64) float64 {
	t.Helper()

	var campaign model.Campaign
	if err := db.First(&campaign, campaignId).Error; err != nil {
		t.Fatalf("reload campaign: %v", err)
	}
	return campaign.RaisedAmount
}
