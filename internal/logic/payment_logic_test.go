package logic

import (
	"errors"
	"strconv"
	"testing"

	"github.com/mobashirsifat123/charity/internal/model"
	"github.com/mobashirsifat123/charity/internal/payment"
)

// fakeProvider 内存中的托管支付提供方
type fakeProvider struct {
	sessions  map[string]*payment.CheckoutSession
	nextId    int
	createErr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{sessions: make(map[string]*payment.CheckoutSession)}
}

func (f *fakeProvider) CreateCheckoutSession(input payment.CreateSessionInput) (*payment.CheckoutSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextId++
	id := "cs_test_" + strconv.Itoa(f.nextId)
	session := &payment.CheckoutSession{
		Id:            id,
		URL:           "https://checkout.example.com/" + id,
		PaymentStatus: "unpaid",
		Metadata: map[string]string{
			"campaignId": strconv.FormatInt(input.CampaignId, 10),
			"userId":     strconv.FormatInt(input.UserId, 10),
			"amount":     strconv.FormatFloat(input.Amount, 'f', -1, 64),
		},
	}
	f.sessions[id] = session
	return session, nil
}

func (f *fakeProvider) GetCheckoutSession(sessionId string) (*payment.CheckoutSession, error) {
	session, ok := f.sessions[sessionId]
	if !ok {
		return nil, errors.New("no such session")
	}
	return session, nil
}

// markPaid 模拟用户在托管页完成支付
func (f *fakeProvider) markPaid(sessionId string) {
	f.sessions[sessionId].PaymentStatus = payment.PaymentStatusPaid
}

func TestCreateCheckoutSessionValidation(t *testing.T) {
	db := testDB(t)
	l := NewPaymentLogic(db, newFakeProvider())

	var validationErr *ValidationError
	if _, err := l.CreateCheckoutSession(1, 1, "X", 0); !errors.As(err, &validationErr) {
		t.Errorf("zero amount: got %v, want ValidationError", err)
	}
	if _, err := l.CreateCheckoutSession(1, 0, "X", 25); !errors.As(err, &validationErr) {
		t.Errorf("missing campaign: got %v, want ValidationError", err)
	}
}

func TestVerifyDonationFullFlow(t *testing.T) {
	db := testDB(t)
	provider := newFakeProvider()
	l := NewPaymentLogic(db, provider)

	campaign := seedCampaign(t, db, "Campaign X", "", 1000)
	user := seedUser(t, db, "Alice", "alice@example.com", model.UserRoleDonor)

	session, err := l.CreateCheckoutSession(user.Id, campaign.Id, campaign.Title, 25.00)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.URL == "" {
		t.Error("expected redirect URL")
	}

	// 未支付时对账失败，错误携带提供方上报的状态
	_, _, err = l.VerifyDonation(session.Id)
	if !errors.Is(err, ErrPaymentNotCompleted) {
		t.Errorf("unpaid verify: got %v, want ErrPaymentNotCompleted", err)
	}
	var notCompleted *PaymentNotCompletedError
	if !errors.As(err, &notCompleted) || notCompleted.Status != "unpaid" {
		t.Errorf("unpaid verify: error = %#v, want status unpaid", err)
	}

	provider.markPaid(session.Id)

	donation, alreadyRecorded, err := l.VerifyDonation(session.Id)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if alreadyRecorded {
		t.Error("first verify reported alreadyRecorded")
	}
	if donation.PaymentStatus != model.PaymentStatusCompleted {
		t.Errorf("status = %q, want completed", donation.PaymentStatus)
	}
	if donation.Amount != 25.00 {
		t.Errorf("amount = %v, want 25.00", donation.Amount)
	}
	if donation.CampaignId != campaign.Id || donation.UserId != user.Id {
		t.Errorf("donation refs = {%d %d}, want {%d %d}", donation.CampaignId, donation.UserId, campaign.Id, user.Id)
	}
	if got := raisedAmount(t, db, campaign.Id); got != 25.00 {
		t.Errorf("raised_amount = %v, want 25.00", got)
	}
}

func TestVerifyDonationIdempotent(t *testing.T) {
	db := testDB(t)
	provider := newFakeProvider()
	l := NewPaymentLogic(db, provider)

	campaign := seedCampaign(t, db, "Campaign X", "", 1000)
	user := seedUser(t, db, "Alice", "alice@example.com", model.UserRoleDonor)

	session, err := l.CreateCheckoutSession(user.Id, campaign.Id, campaign.Title, 40)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	provider.markPaid(session.Id)

	first, _, err := l.VerifyDonation(session.Id)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}

	// 重复对账返回同一条捐赠记录，已筹金额只累加一次
	second, alreadyRecorded, err := l.VerifyDonation(session.Id)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if !alreadyRecorded {
		t.Error("second verify did not report alreadyRecorded")
	}
	if second.Id != first.Id {
		t.Errorf("second verify returned donation %d, want %d", second.Id, first.Id)
	}

	var count int64
	if err := db.Model(&model.Donation{}).Where("stripe_session_id = ?", session.Id).Count(&count).Error; err != nil {
		t.Fatalf("count donations: %v", err)
	}
	if count != 1 {
		t.Errorf("donation count for session = %d, want 1", count)
	}
	if got := raisedAmount(t, db, campaign.Id); got != 40 {
		t.Errorf("raised_amount = %v, want 40 (single increment)", got)
	}
}

func TestVerifyDonationMissingSession(t *testing.T) {
	db := testDB(t)
	l := NewPaymentLogic(db, newFakeProvider())

	var validationErr *ValidationError
	if _, _, err := l.VerifyDonation(""); !errors.As(err, &validationErr) {
		t.Errorf("empty session id: got %v, want ValidationError", err)
	}
	// 提供方错误被包装，消息原样保留
	var paymentErr *PaymentError
	_, _, err := l.VerifyDonation("cs_unknown")
	if !errors.As(err, &paymentErr) {
		t.Fatalf("unknown session id: got %v, want PaymentError", err)
	}
	if paymentErr.Message != "no such session" {
		t.Errorf("provider message = %q, want no such session", paymentErr.Message)
	}
}

func TestCreateCheckoutSessionProviderError(t *testing.T) {
	db := testDB(t)
	provider := newFakeProvider()
	provider.createErr = errors.New("card declined")
	l := NewPaymentLogic(db, provider)

	var paymentErr *PaymentError
	_, err := l.CreateCheckoutSession(1, 1, "X", 25)
	if !errors.As(err, &paymentErr) {
		t.Fatalf("got %v, want PaymentError", err)
	}
	if paymentErr.Message != "card declined" {
		t.Errorf("provider message = %q, want card declined", paymentErr.Message)
	}
}

func TestRecordVerifiedDonationDuplicateSession(t *testing.T) {
	db := testDB(t)
	l := NewPaymentLogic(db, newFakeProvider())

	campaign := seedCampaign(t, db, "Campaign X", "", 1000)
	user := seedUser(t, db, "Alice", "alice@example.com", model.UserRoleDonor)

	// 模拟并发对账中抢先落账的一方
	first, err := l.donations.CreateDonationWithSession(
		user.Id, campaign.Id, 30, model.PaymentStatusCompleted, "cs_test_race")
	if err != nil {
		t.Fatalf("seed first donation: %v", err)
	}

	// 落败方撞上唯一索引后改读已落账的记录
	second, alreadyRecorded, err := l.recordVerifiedDonation("cs_test_race", campaign.Id, user.Id, 30)
	if err != nil {
		t.Fatalf("losing verify: %v", err)
	}
	if !alreadyRecorded {
		t.Error("losing verify did not report alreadyRecorded")
	}
	if second.Id != first.Id {
		t.Errorf("losing verify returned donation %d, want %d", second.Id, first.Id)
	}

	var count int64
	if err := db.Model(&model.Donation{}).Where("stripe_session_id = ?", "cs_test_race").Count(&count).Error; err != nil {
		t.Fatalf("count donations: %v", err)
	}
	if count != 1 {
		t.Errorf("donation count for session = %d, want 1", count)
	}
	if got := raisedAmount(t, db, campaign.Id); got != 30 {
		t.Errorf("raised_amount = %v, want 30 (single increment)", got)
	}
}
