package logic

import (
	"errors"
)

// 业务错误，由handler层映射为HTTP状态码
var (
	ErrCampaignNotFound     = errors.New("活动不存在")
	ErrDonationNotFound     = errors.New("捐赠记录不存在")
	ErrDuplicateEmail       = errors.New("该邮箱已被注册")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrCampaignHasDonations = errors.New("活动存在已完成的捐赠，无法删除")
	ErrPaymentNotCompleted  = errors.New("支付未完成")
)

// PaymentError 支付提供方调用失败，消息需透传给客户端
type PaymentError struct {
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError 包装支付提供方返回的错误
func NewPaymentError(err error) error {
	return &PaymentError{Message: err.Error(), Err: err}
}

// PaymentNotCompletedError 支付未完成，携带提供方上报的支付状态
type PaymentNotCompletedError struct {
	Status string
}

func (e *PaymentNotCompletedError) Error() string {
	return ErrPaymentNotCompleted.Error()
}

func (e *PaymentNotCompletedError) Is(target error) bool {
	return target == ErrPaymentNotCompleted
}

// ValidationError 请求参数校验错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 创建校验错误
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
