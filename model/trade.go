package model

import "github.com/dillonko/ccxt/types"

// Fee 手续费信息
type Fee struct {
	// Currency 手续费币种
	Currency string `json:"currency"`
	// Cost 手续费金额
	Cost types.ExNumber `json:"cost"`
	// Rate 手续费率
	Rate types.ExNumber `json:"rate"`
}

// Trade 成交记录
type Trade struct {
	// ID 成交ID
	ID string `json:"id"`
	// OrderID 关联订单ID（公共成交为空）
	OrderID string `json:"order,omitempty"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Type 订单类型
	Type string `json:"type,omitempty"`
	// Side 方向（buy/sell，小写）
	Side string `json:"side"`
	// Price 成交价
	Price types.ExNumber `json:"price"`
	// Amount 成交量
	Amount types.ExNumber `json:"amount"`
	// Cost 成交金额 = Price * Amount
	Cost types.ExNumber `json:"cost"`
	// Fee 手续费
	Fee *Fee `json:"fee,omitempty"`
	// Timestamp 成交时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}
