package logic

import (
	"testing"

	"github.com/mobashirsifat123/charity/internal/model"
)

func TestGetPlatformStats(t *testing.T) {
	db := testDB(t)
	l := NewAdminLogic(db)

	campaign := seedCampaign(t, db, "Water", "", 1000)
	other := seedCampaign(t, db, "Books", "", 500)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.UserRoleDonor)
	bob := seedUser(t, db, "Bob", "bob@example.com", model.UserRoleDonor)

	donations := NewDonationLogic(db)
	if _, err := donations.CreateDonation(alice.Id, campaign.Id, 10); err != nil {
		t.Fatalf("donate: %v", err)
	}
	if _, err := donations.CreateDonation(alice.Id, other.Id, 15); err != nil {
		t.Fatalf("donate: %v", err)
	}
	if _, err := donations.CreateDonation(bob.Id, campaign.Id, 5); err != nil {
		t.Fatalf("donate: %v", err)
	}
	// 一条pending记录：计入总捐赠数但不计入金额和捐赠人数
	pending := model.Donation{UserId: bob.Id, CampaignId: campaign.Id, Amount: 99, PaymentStatus: model.PaymentStatusPending}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending donation: %v", err)
	}

	stats, err := l.GetPlatformStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRaised != 30 {
		t.Errorf("TotalRaised = %v, want 30", stats.TotalRaised)
	}
	if stats.TotalDonors != 2 {
		t.Errorf("TotalDonors = %d, want 2", stats.TotalDonors)
	}
	if stats.TotalCampaigns != 2 {
		t.Errorf("TotalCampaigns = %d, want 2", stats.TotalCampaigns)
	}
	if stats.TotalDonations != 4 {
		t.Errorf("TotalDonations = %d, want 4", stats.TotalDonations)
	}
}

func TestGetAllDonations(t *testing.T) {
	db := testDB(t)
	l := NewAdminLogic(db)

	campaign := seedCampaign(t, db, "Water Fund", "", 1000)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.UserRoleDonor)

	donations := NewDonationLogic(db)
	if _, err := donations.CreateDonation(alice.Id, campaign.Id, 12); err != nil {
		t.Fatalf("donate: %v", err)
	}

	rows, err := l.GetAllDonations()
	if err != nil {
		t.Fatalf("all donations: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.DonorName != "Alice" || row.DonorEmail != "alice@example.com" {
		t.Errorf("donor = %q/%q", row.DonorName, row.DonorEmail)
	}
	if row.CampaignTitle != "Water Fund" {
		t.Errorf("campaign title = %q", row.CampaignTitle)
	}
	if row.Amount != 12 {
		t.Errorf("amount = %v, want 12", row.Amount)
	}
}
