package exchange

import (
	"errors"
	"fmt"
)

// 错误种类哨兵，供 errors.Is 判断
var (
	// ErrCredentialsMissing 缺少API凭证
	ErrCredentialsMissing = errors.New("credentials missing")
	// ErrArgumentsRequired 缺少必需参数
	ErrArgumentsRequired = errors.New("arguments required")
	// ErrAuthentication 认证失败
	ErrAuthentication = errors.New("authentication error")
	// ErrPermissionDenied 权限不足
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidNonce 时间戳/nonce无效
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrRateLimit 触发限频
	ErrRateLimit = errors.New("rate limit exceeded")
	// ErrInvalidOrder 订单参数无效
	ErrInvalidOrder = errors.New("invalid order")
	// ErrBadRequest 请求参数错误
	ErrBadRequest = errors.New("bad request")
	// ErrInsufficientFunds 余额不足
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrMarketNotFound 市场不存在
	ErrMarketNotFound = errors.New("market not found")
	// ErrNotSupported 操作不支持
	ErrNotSupported = errors.New("not supported")
	// ErrExchange 交易所侧未归类错误
	ErrExchange = errors.New("exchange error")
)

// Error 交易所返回的错误
//
// Kind 为上方哨兵之一，Code 为交易所错误码（HTTP层错误时为0），
// Body 为原始响应体。
type Error struct {
	// Kind 错误种类
	Kind error
	// Exchange 交易所名称
	Exchange string
	// Code 交易所错误码
	Code int64
	// Body 原始响应体
	Body string
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Kind.Error(), e.Exchange, e.Body)
}

// Unwrap 支持 errors.Is 按种类匹配
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError 创建交易所错误
func NewError(kind error, exchange string, code int64, body string) *Error {
	return &Error{
		Kind:     kind,
		Exchange: exchange,
		Code:     code,
		Body:     body,
	}
}
