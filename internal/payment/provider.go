package payment

// 外部托管支付提供方的会话契约
// 业务逻辑只依赖该接口，Stripe实现见stripe.go

// PaymentStatusPaid 提供方上报的支付完成状态
const PaymentStatusPaid = "paid"

// CheckoutSession 托管支付会话
type CheckoutSession struct {
	Id            string            // 会话ID，后续对账的幂等键
	URL           string            // 托管支付页跳转地址
	PaymentStatus string            // 提供方上报的支付状态
	Metadata      map[string]string // 创建会话时附带的业务元数据
}

// CreateSessionInput 创建支付会话的参数
type CreateSessionInput struct {
	Amount        float64 // 捐赠金额（元单位）
	CampaignId    int64
	CampaignTitle string
	UserId        int64
}

// Provider 托管支付提供方
type Provider interface {
	// CreateCheckoutSession 创建托管支付会话
	CreateCheckoutSession(input CreateSessionInput) (*CheckoutSession, error)
	// GetCheckoutSession 拉取会话当前状态与元数据
	GetCheckoutSession(sessionId string) (*CheckoutSession, error)
}
