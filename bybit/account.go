package bybit

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// FetchBalance 查询钱包余额，code 为空时使用默认币种
func (e *Exchange) FetchBalance(ctx context.Context, code string) (*model.Balances, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	if code == "" {
		code = e.opts.DefaultCurrencyCode
	}

	params := types.NewExValues()
	params.Set("coin", code)

	env, err := e.request(ctx, routeWalletBalance, params)
	if err != nil {
		return nil, err
	}

	var accounts map[string]rawAccount
	if err := json.Unmarshal(env.Result, &accounts); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	var info map[string]any
	_ = json.Unmarshal(env.Result, &info)

	return parseBalances(accounts, info), nil
}

// fetchTransactionsBy 查询充提记录，币种为必填参数
func (e *Exchange) fetchTransactionsBy(ctx context.Context, r route, op, code string, since types.ExTimestamp, limit int) ([]*model.Transaction, error) {
	if code == "" {
		return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, op+" requires a currency code argument")
	}
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("currency", code)
	if limit > 0 {
		params.SetInt64("count", int64(limit))
	}

	env, err := e.request(ctx, r, params)
	if err != nil {
		return nil, err
	}

	var result rawTransactionList
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}

	transactions := make([]*model.Transaction, 0, len(result.Data))
	for i := range result.Data {
		tx := parseTransaction(&result.Data[i], code)
		if since.Valid() && tx.Timestamp.Valid() && tx.Timestamp.UnixMilliOrZero() < since.UnixMilliOrZero() {
			continue
		}
		transactions = append(transactions, tx)
	}
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

// FetchDeposits 查询充值记录
func (e *Exchange) FetchDeposits(ctx context.Context, code string, since types.ExTimestamp, limit int) ([]*model.Transaction, error) {
	return e.fetchTransactionsBy(ctx, routeDeposits, "fetchDeposits", code, since, limit)
}

// FetchWithdrawals 查询提现记录
func (e *Exchange) FetchWithdrawals(ctx context.Context, code string, since types.ExTimestamp, limit int) ([]*model.Transaction, error) {
	return e.fetchTransactionsBy(ctx, routeWithdrawals, "fetchWithdrawals", code, since, limit)
}

// Withdraw 发起提现，地址必须已在交易所地址簿中
func (e *Exchange) Withdraw(ctx context.Context, code string, amount decimal.Decimal, address string, params *types.ExValues) (*model.Transaction, error) {
	if address == "" {
		return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "withdraw requires an address argument")
	}
	if code == "" {
		return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "withdraw requires a currency code argument")
	}
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	request := params.Clone()
	request.Set("currency", code)
	request.Set("address", address)
	request.Set("amount", amount.String())

	env, err := e.request(ctx, routeWithdraw, request)
	if err != nil {
		return nil, err
	}

	var raw rawTransaction
	if len(env.Result) > 0 {
		_ = json.Unmarshal(env.Result, &raw)
	}
	return &model.Transaction{
		ID:       raw.ID.String(),
		Type:     model.TransactionTypeWithdrawal,
		Currency: code,
		Amount:   types.Number(amount),
		Address:  address,
		Info:     raw.Info,
	}, nil
}
