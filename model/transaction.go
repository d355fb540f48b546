package model

import "github.com/dillonko/ccxt/types"

// TransactionType 资金流水类型
type TransactionType string

const (
	// TransactionTypeDeposit 充值
	TransactionTypeDeposit TransactionType = "deposit"
	// TransactionTypeWithdrawal 提现
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus 资金流水状态
//
// 已知状态映射为 ok/pending，未知状态原样透传。
type TransactionStatus string

const (
	// TransactionStatusOK 已完成
	TransactionStatusOK TransactionStatus = "ok"
	// TransactionStatusPending 处理中
	TransactionStatusPending TransactionStatus = "pending"
)

// Transaction 充值/提现记录
type Transaction struct {
	// ID 记录ID
	ID string `json:"id"`
	// TxID 链上交易哈希
	TxID string `json:"txid"`
	// Type 类型（deposit/withdrawal）
	Type TransactionType `json:"type"`
	// Currency 币种代码
	Currency string `json:"currency"`
	// Amount 金额
	Amount types.ExNumber `json:"amount"`
	// Address 地址
	Address string `json:"address"`
	// Status 状态
	Status TransactionStatus `json:"status"`
	// Fee 手续费（仅提现记录携带）
	Fee *Fee `json:"fee,omitempty"`
	// Timestamp 创建时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Updated 更新时间
	Updated types.ExTimestamp `json:"updated"`
	// Info 交易所原始信息
	Info map[string]any `json:"info,omitempty"`
}
