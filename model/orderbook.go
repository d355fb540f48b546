package model

import (
	"encoding/json"
	"fmt"

	"github.com/dillonko/ccxt/types"
)

// BookLevel 盘口档位（价格/数量）
type BookLevel struct {
	// Price 价格
	Price types.ExNumber `json:"price"`
	// Amount 数量
	Amount types.ExNumber `json:"amount"`
}

// UnmarshalJSON 支持 [price, amount] 数组和 {price, amount} 对象两种形式
func (l *BookLevel) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var pair []types.ExNumber
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) < 2 {
			return fmt.Errorf("book level: expected [price, amount], got %d elements", len(pair))
		}
		l.Price, l.Amount = pair[0], pair[1]
		return nil
	}
	type alias BookLevel
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = BookLevel(a)
	return nil
}

// OrderBook 订单簿快照
type OrderBook struct {
	// Symbol 交易对符号
	Symbol string `json:"symbol"`
	// Bids 买盘（价格降序）
	Bids []BookLevel `json:"bids"`
	// Asks 卖盘（价格升序）
	Asks []BookLevel `json:"asks"`
	// Nonce 快照序号
	Nonce int64 `json:"nonce"`
	// Timestamp 快照时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}
