package exchange

import "time"

// 默认配置
const (
	// DefaultRecvWindow 默认签名有效窗口（毫秒）
	DefaultRecvWindow int64 = 5000
	// DefaultCurrencyCode 默认币种
	DefaultCurrencyCode = "BTC"
)

// Options 交易所配置
type Options struct {
	// APIKey API密钥
	APIKey string
	// SecretKey API密钥对应的私钥
	SecretKey string
	// BaseURL 自定义API地址，为空时使用交易所默认地址
	BaseURL string
	// Testnet 是否使用测试网
	Testnet bool
	// Proxy 代理地址
	Proxy string
	// Debug 是否输出调试日志
	Debug bool
	// HTTPTimeout HTTP超时时间，零值使用客户端默认值
	HTTPTimeout time.Duration
	// RecvWindow 签名有效窗口（毫秒），零值使用 DefaultRecvWindow
	RecvWindow int64
	// DefaultCurrencyCode 未指定币种时的默认币种，为空使用 BTC
	DefaultCurrencyCode string
	// AdjustForTimeDifference 加载市场时是否同步服务器时间偏移
	AdjustForTimeDifference bool
	// TimeDifference 初始时间偏移（本地毫秒时间减服务器毫秒时间）
	TimeDifference int64
}

// Normalize 填充零值配置项的默认值
func (o Options) Normalize() Options {
	if o.RecvWindow == 0 {
		o.RecvWindow = DefaultRecvWindow
	}
	if o.DefaultCurrencyCode == "" {
		o.DefaultCurrencyCode = DefaultCurrencyCode
	}
	return o
}
