package model

import "github.com/dillonko/ccxt/types"

// Ticker 行情快照
//
// 所有派生字段（Change、Average、VWAP 等）在任一输入缺失时保持缺失，
// 不会被默默置零。
type Ticker struct {
	// Symbol 交易对
	Symbol string `json:"symbol"`
	// Timestamp 时间戳（交易所可能不提供）
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Bid 买一价
	Bid types.ExNumber `json:"bid"`
	// BidVolume 买一量
	BidVolume types.ExNumber `json:"bidVolume"`
	// Ask 卖一价
	Ask types.ExNumber `json:"ask"`
	// AskVolume 卖一量
	AskVolume types.ExNumber `json:"askVolume"`
	// High 24小时最高价
	High types.ExNumber `json:"high"`
	// Low 24小时最低价
	Low types.ExNumber `json:"low"`
	// Open 开盘价
	Open types.ExNumber `json:"open"`
	// Close 收盘价（等于 Last）
	Close types.ExNumber `json:"close"`
	// Last 最新价
	Last types.ExNumber `json:"last"`
	// Change 涨跌额 = Last - Open
	Change types.ExNumber `json:"change"`
	// Percentage 涨跌幅（交易所口径，已 ×100）
	Percentage types.ExNumber `json:"percentage"`
	// Average 均价 = (Open + Last) / 2
	Average types.ExNumber `json:"average"`
	// VWAP 成交量加权均价 = QuoteVolume / BaseVolume
	VWAP types.ExNumber `json:"vwap"`
	// BaseVolume 24小时成交量（基础货币）
	BaseVolume types.ExNumber `json:"baseVolume"`
	// QuoteVolume 24小时成交额（计价货币）
	QuoteVolume types.ExNumber `json:"quoteVolume"`
	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}

// Tickers 行情快照集合（symbol -> Ticker）
type Tickers map[string]*Ticker
