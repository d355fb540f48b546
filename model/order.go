package model

import "github.com/dillonko/ccxt/types"

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// OrderType 订单类型
type OrderType string

const (
	// OrderTypeMarket 市价单
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit 限价单
	OrderTypeLimit OrderType = "limit"
	// OrderTypeStopLimit 止损限价单
	OrderTypeStopLimit OrderType = "stop_limit"
	// OrderTypeStopMarket 止损市价单
	OrderTypeStopMarket OrderType = "stop_market"
)

// OrderStatus 订单状态
//
// 交易所返回的未知状态原样透传，调用方必须将无法识别的状态视为
// 不透明值处理，不应崩溃。
type OrderStatus string

const (
	// OrderStatusOpen 未成交
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed 已成交
	OrderStatusClosed OrderStatus = "closed"
	// OrderStatusCanceled 已取消
	OrderStatusCanceled OrderStatus = "canceled"
	// OrderStatusRejected 已拒绝
	OrderStatusRejected OrderStatus = "rejected"
)

// Order 订单信息
type Order struct {
	// ID 订单ID
	ID string `json:"id"`
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Type 订单类型
	Type OrderType `json:"type"`
	// Side 订单方向
	Side OrderSide `json:"side"`
	// Price 委托价格
	Price types.ExNumber `json:"price"`
	// Average 平均成交价格
	Average types.ExNumber `json:"average"`
	// Amount 委托数量
	Amount types.ExNumber `json:"amount"`
	// Filled 已成交数量
	Filled types.ExNumber `json:"filled"`
	// Remaining 未成交数量 = Amount - Filled
	Remaining types.ExNumber `json:"remaining"`
	// Cost 成交金额 = Price * Filled
	Cost types.ExNumber `json:"cost"`
	// Status 订单状态
	Status OrderStatus `json:"status"`
	// Fee 手续费
	Fee *Fee `json:"fee,omitempty"`
	// Trades 关联成交（可能为空）
	Trades []*Trade `json:"trades,omitempty"`
	// Timestamp 创建时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// LastTradeTimestamp 最近成交时间，仅在 Filled > 0 时存在
	LastTradeTimestamp types.ExTimestamp `json:"lastTradeTimestamp"`
	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}
