package ccxt

import (
	"fmt"
	"sync"
	"time"

	"github.com/dillonko/ccxt/bybit"
	"github.com/dillonko/ccxt/exchange"
)

// 交易所名称常量
const (
	ExchangeBybit = "bybit" // Bybit 交易所
)

// Option 配置选项函数类型
type Option func(*exchange.Options)

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *exchange.Options) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key
func WithSecretKey(secretKey string) Option {
	return func(opts *exchange.Options) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *exchange.Options) {
		opts.BaseURL = baseURL
	}
}

// WithTestnet 设置是否使用测试网
func WithTestnet(testnet bool) Option {
	return func(opts *exchange.Options) {
		opts.Testnet = testnet
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *exchange.Options) {
		opts.Proxy = proxy
	}
}

// WithDebug 设置是否输出调试日志
func WithDebug(debug bool) Option {
	return func(opts *exchange.Options) {
		opts.Debug = debug
	}
}

// WithHTTPTimeout 设置HTTP超时时间
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(opts *exchange.Options) {
		opts.HTTPTimeout = timeout
	}
}

// WithRecvWindow 设置签名有效窗口（毫秒）
func WithRecvWindow(recvWindow int64) Option {
	return func(opts *exchange.Options) {
		opts.RecvWindow = recvWindow
	}
}

// WithDefaultCurrency 设置默认币种
func WithDefaultCurrency(code string) Option {
	return func(opts *exchange.Options) {
		opts.DefaultCurrencyCode = code
	}
}

// WithAdjustForTimeDifference 设置加载市场时是否同步服务器时间偏移
func WithAdjustForTimeDifference(adjust bool) Option {
	return func(opts *exchange.Options) {
		opts.AdjustForTimeDifference = adjust
	}
}

// ExchangeFactory 交易所工厂函数
type ExchangeFactory func(opts exchange.Options) (exchange.Exchange, error)

// Registry 交易所注册表
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ExchangeFactory
}

var globalRegistry = &Registry{
	factories: make(map[string]ExchangeFactory),
}

// init 初始化函数，注册所有支持的交易所
func init() {
	Register(ExchangeBybit, func(opts exchange.Options) (exchange.Exchange, error) {
		return bybit.New(opts)
	})
}

// Register 注册交易所
func Register(name string, factory ExchangeFactory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories[name] = factory
}

// NewExchange 创建交易所实例（使用 Functional Options Pattern）
func NewExchange(name string, opts ...Option) (exchange.Exchange, error) {
	options := exchange.Options{}
	for _, opt := range opts {
		opt(&options)
	}

	globalRegistry.mu.RLock()
	factory, ok := globalRegistry.factories[name]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("exchange not supported: %s", name)
	}
	return factory(options)
}

// GetSupportedExchanges 获取支持的交易所列表
func GetSupportedExchanges() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	exchanges := make([]string, 0, len(globalRegistry.factories))
	for name := range globalRegistry.factories {
		exchanges = append(exchanges, name)
	}
	return exchanges
}

// IsExchangeSupported 检查交易所是否支持
func IsExchangeSupported(name string) bool {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	_, ok := globalRegistry.factories[name]
	return ok
}
