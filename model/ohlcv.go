package model

import "github.com/dillonko/ccxt/types"

// OHLCV K线数据
//
// Volume 取交易所的 turnover 字段（计价货币口径），这是该交易所的
// 口径选择，按原样保留。
type OHLCV struct {
	// Timestamp 开盘时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Open 开盘价
	Open types.ExNumber `json:"open"`
	// High 最高价
	High types.ExNumber `json:"high"`
	// Low 最低价
	Low types.ExNumber `json:"low"`
	// Close 收盘价
	Close types.ExNumber `json:"close"`
	// Volume 成交额
	Volume types.ExNumber `json:"volume"`
}

// OHLCVs K线数据数组，按时间升序排列
type OHLCVs []*OHLCV
