package model

import "github.com/dillonko/ccxt/types"

// MarketType 市场类型
type MarketType string

const (
	// MarketTypeSpot 现货市场
	MarketTypeSpot MarketType = "spot"
	// MarketTypeFuture 合约市场
	MarketTypeFuture MarketType = "future"
)

// MinMax 区间限制
type MinMax struct {
	// Min 最小值
	Min types.ExNumber `json:"min"`
	// Max 最大值
	Max types.ExNumber `json:"max"`
}

// MarketPrecision 精度信息（tick/step 步长，不是小数位数）
type MarketPrecision struct {
	// Amount 数量步长（qty step）
	Amount types.ExNumber `json:"amount"`
	// Price 价格步长（tick size）
	Price types.ExNumber `json:"price"`
}

// MarketLimits 限制信息
type MarketLimits struct {
	// Amount 数量限制
	Amount MinMax `json:"amount"`
	// Price 价格限制
	Price MinMax `json:"price"`
	// Cost 成本限制
	Cost MinMax `json:"cost"`
}

// Market 市场信息
type Market struct {
	// ID 交易所内部市场ID，如 "BTCUSD"，是调用交易所 API 的唯一键
	ID string `json:"id"`

	// Symbol 统一格式交易对符号，始终由 Base+Quote 推导，如 "BTC/USD"
	Symbol string `json:"symbol"`

	// Base 基础货币，如 "BTC"
	Base string `json:"base"`

	// Quote 计价货币，如 "USD"
	Quote string `json:"quote"`

	// Type 市场类型
	Type MarketType `json:"type"`

	// Active 是否活跃；nil 表示交易所未提供该信息
	Active *bool `json:"active"`

	// Taker taker 手续费率
	Taker types.ExNumber `json:"taker"`

	// Maker maker 手续费率（可能为负，代表返佣）
	Maker types.ExNumber `json:"maker"`

	// Precision 精度信息
	Precision MarketPrecision `json:"precision"`

	// Limits 限制信息
	Limits MarketLimits `json:"limits"`

	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}
