package payment

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mobashirsifat123/charity/internal/config"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// StripeProvider Stripe托管支付实现
type StripeProvider struct {
	frontendURL string
}

// NewStripeProvider 创建Stripe支付客户端
func NewStripeProvider(cfg config.StripeConfig) *StripeProvider {
	stripe.Key = cfg.SecretKey
	return &StripeProvider{frontendURL: cfg.FrontendURL}
}

// CreateCheckoutSession 创建Stripe Checkout会话
// 金额按最小货币单位（美分）取整；活动、用户、金额写入会话元数据供对账读取
func (p *StripeProvider) CreateCheckoutSession(input CreateSessionInput) (*CheckoutSession, error) {
	title := input.CampaignTitle
	if title == "" {
		title = "Campaign"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("Donation: %s", title)),
						Description: stripe.String(fmt.Sprintf("Supporting %s", title)),
					},
					UnitAmount: stripe.Int64(int64(math.Round(input.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.frontendURL + "/donation/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(p.frontendURL + "/?cancelled=true"),
	}
	params.AddMetadata("campaignId", strconv.FormatInt(input.CampaignId, 10))
	params.AddMetadata("userId", strconv.FormatInt(input.UserId, 10))
	params.AddMetadata("amount", strconv.FormatFloat(input.Amount, 'f', -1, 64))

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return toCheckoutSession(s), nil
}

// GetCheckoutSession 拉取Stripe会话
func (p *StripeProvider) GetCheckoutSession(sessionId string) (*CheckoutSession, error) {
	s, err := session.Get(sessionId, nil)
	if err != nil {
		return nil, err
	}
	return toCheckoutSession(s), nil
}

func toCheckoutSession(s *stripe.CheckoutSession) *CheckoutSession {
	return &CheckoutSession{
		Id:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		Metadata:      s.Metadata,
	}
}
