package model

import "github.com/dillonko/ccxt/types"

// Balance 单一币种余额
type Balance struct {
	// Free 可用余额
	Free types.ExNumber `json:"free"`
	// Used 占用余额
	Used types.ExNumber `json:"used"`
	// Total 总余额
	Total types.ExNumber `json:"total"`
}

// Balances 余额快照（币种代码 -> 余额），Info 保留原始应答
type Balances struct {
	// Accounts 各币种余额
	Accounts map[string]*Balance `json:"accounts"`
	// Info 交易所原始应答
	Info map[string]any `json:"info,omitempty"`
}

// Account 获取指定币种余额；不存在时返回空余额
func (b *Balances) Account(code string) *Balance {
	if balance, ok := b.Accounts[code]; ok {
		return balance
	}
	return &Balance{}
}
