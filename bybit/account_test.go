package bybit

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

func TestFetchBalance(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"BTC":{"equity":1.0254,"available_balance":0.9754,"used_margin":0.05}}`), nil
	})

	balances, err := e.FetchBalance(context.Background(), "")
	require.NoError(t, err)

	btc := balances.Account("BTC")
	require.Equal(t, "0.9754", btc.Free.String())
	require.Equal(t, "0.05", btc.Used.String())
	require.Equal(t, "1.0254", btc.Total.String())
	require.NotNil(t, balances.Info)

	last := stub.requests[len(stub.requests)-1]
	require.Contains(t, last.URL, "/v2/private/wallet/balance")
	require.Contains(t, last.URL, "coin=BTC")
}

func TestFetchBalance_ExplicitCoin(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"ETH":{"equity":12,"available_balance":10,"used_margin":2}}`), nil
	})

	_, err := e.FetchBalance(context.Background(), "ETH")
	require.NoError(t, err)
	require.Contains(t, stub.requests[len(stub.requests)-1].URL, "coin=ETH")
}

func TestFetchDeposits(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"count":1,"data":[
			{"id":234,"amount":"0.5","transaction_id":"abc123",
			 "address":"1FuDzxL5yTfJ68Q1Z1Y7mKcKjKcKQ6dVxA",
			 "received_timestamp":1550657341322,"state":"ok"}
		]}`), nil
	})

	deposits, err := e.FetchDeposits(context.Background(), "BTC", types.ExTimestamp{}, 0)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	require.Equal(t, model.TransactionTypeDeposit, deposits[0].Type)
	require.Equal(t, "BTC", deposits[0].Currency)
	require.Equal(t, int64(1550657341322), deposits[0].Timestamp.UnixMilliOrZero())
	require.Nil(t, deposits[0].Fee)

	last := stub.requests[len(stub.requests)-1]
	require.Contains(t, last.URL, "/v2/private/get_deposits")
	require.Contains(t, last.URL, "currency=BTC")
}

func TestFetchDeposits_RequiresCode(t *testing.T) {
	e, _ := newTestExchange(t, nil)

	_, err := e.FetchDeposits(context.Background(), "", types.ExTimestamp{}, 0)
	require.True(t, errors.Is(err, exchange.ErrArgumentsRequired))
}

func TestFetchWithdrawals(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"count":2,"data":[
			{"id":501,"amount":"0.2","fee":"0.0005","transaction_id":"def456",
			 "address":"1FuDzxL5yTfJ68Q1Z1Y7mKcKjKcKQ6dVxA",
			 "created_timestamp":1550657000000,"state":"pending"},
			{"id":502,"amount":"0.1","fee":"0.0005","transaction_id":"ghi789",
			 "address":"1FuDzxL5yTfJ68Q1Z1Y7mKcKjKcKQ6dVxA",
			 "created_timestamp":1550658000000,"state":"ok"}
		]}`), nil
	})

	withdrawals, err := e.FetchWithdrawals(context.Background(), "BTC", types.ExTimestamp{}, 0)
	require.NoError(t, err)
	require.Len(t, withdrawals, 2)
	require.Equal(t, model.TransactionTypeWithdrawal, withdrawals[0].Type)
	require.Equal(t, model.TransactionStatusPending, withdrawals[0].Status)
	require.NotNil(t, withdrawals[0].Fee)
	require.Equal(t, "0.0005", withdrawals[0].Fee.Cost.String())
	require.Equal(t, "BTC", withdrawals[0].Fee.Currency)

	require.Contains(t, stub.requests[len(stub.requests)-1].URL, "/v2/private/get_withdrawals")
}

func TestFetchWithdrawals_SinceAndLimit(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"count":3,"data":[
			{"id":501,"amount":"0.2","fee":"0.0005","created_timestamp":1550657000000,"state":"ok"},
			{"id":502,"amount":"0.1","fee":"0.0005","created_timestamp":1550658000000,"state":"ok"},
			{"id":503,"amount":"0.3","fee":"0.0005","created_timestamp":1550659000000,"state":"ok"}
		]}`), nil
	})

	withdrawals, err := e.FetchWithdrawals(context.Background(), "BTC", types.TimestampFromMilli(1550658000000), 1)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	require.Equal(t, "502", withdrawals[0].ID)
	require.Contains(t, stub.requests[len(stub.requests)-1].URL, "count=1")
}

func TestWithdraw(t *testing.T) {
	e, stub := newTestExchange(t, func(req *common.Request) (*common.Response, error) {
		return okResponse(`{"id":700}`), nil
	})

	tx, err := e.Withdraw(context.Background(), "BTC", decimal.NewFromFloat(0.01),
		"1FuDzxL5yTfJ68Q1Z1Y7mKcKjKcKQ6dVxA", nil)
	require.NoError(t, err)
	require.Equal(t, "700", tx.ID)
	require.Equal(t, model.TransactionTypeWithdrawal, tx.Type)
	require.Equal(t, "BTC", tx.Currency)
	require.Equal(t, "0.01", tx.Amount.String())

	last := stub.requests[len(stub.requests)-1]
	require.Contains(t, last.URL, "/v2/private/withdraw")
	require.Contains(t, last.URL, "currency=BTC")
	require.Contains(t, last.URL, "address=1FuDzxL5yTfJ68Q1Z1Y7mKcKjKcKQ6dVxA")
	require.Contains(t, last.URL, "amount=0.01")
}

func TestWithdraw_RequiredArguments(t *testing.T) {
	e, _ := newTestExchange(t, nil)
	ctx := context.Background()

	_, err := e.Withdraw(ctx, "BTC", decimal.NewFromFloat(0.01), "", nil)
	require.True(t, errors.Is(err, exchange.ErrArgumentsRequired))

	_, err = e.Withdraw(ctx, "", decimal.NewFromFloat(0.01), "addr", nil)
	require.True(t, errors.Is(err, exchange.ErrArgumentsRequired))
}
