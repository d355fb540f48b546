package exchange

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// Exchange 统一交易所接口
type Exchange interface {
	// Name 返回交易所名称
	Name() string

	// ========== 市场数据 ==========

	// LoadMarkets 加载市场信息，reload 为 false 时复用缓存
	LoadMarkets(ctx context.Context, reload bool) error

	// FetchMarkets 拉取市场列表
	FetchMarkets(ctx context.Context) ([]*model.Market, error)

	// Market 获取单个市场信息（需先加载市场）
	Market(symbol string) (*model.Market, error)

	// Markets 从内存中获取所有市场信息
	Markets() []*model.Market

	// FetchTime 获取服务器时间
	FetchTime(ctx context.Context) (types.ExTimestamp, error)

	// FetchTicker 获取单个行情
	FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error)

	// FetchTickers 批量获取行情，symbols 为空时返回全部
	FetchTickers(ctx context.Context, symbols ...string) (model.Tickers, error)

	// FetchOrderBook 获取订单簿快照，limit 为0时使用交易所默认深度
	FetchOrderBook(ctx context.Context, symbol string, limit int) (*model.OrderBook, error)

	// FetchTrades 获取公开成交记录
	FetchTrades(ctx context.Context, symbol string, since types.ExTimestamp, limit int) ([]*model.Trade, error)

	// FetchOHLCV 获取K线数据
	FetchOHLCV(ctx context.Context, symbol string, timeframe model.Timeframe, since types.ExTimestamp, limit int) (model.OHLCVs, error)

	// ========== 订单操作 ==========

	// CreateOrder 创建订单，市价单 price 传无效的 ExNumber
	CreateOrder(ctx context.Context, symbol string, orderType model.OrderType, side model.OrderSide, amount decimal.Decimal, price types.ExNumber, params *types.ExValues) (*model.Order, error)

	// EditOrder 修改订单的数量和价格
	EditOrder(ctx context.Context, id, symbol string, amount decimal.Decimal, price types.ExNumber) (*model.Order, error)

	// CancelOrder 取消订单
	CancelOrder(ctx context.Context, id, symbol string) (*model.Order, error)

	// CancelAllOrders 取消订单，symbol 为空时取消全部市场的订单
	CancelAllOrders(ctx context.Context, symbol string) error

	// FetchOrder 查询订单
	FetchOrder(ctx context.Context, id, symbol string) (*model.Order, error)

	// FetchOpenOrders 查询未完成订单
	FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error)

	// FetchClosedOrders 查询历史订单
	FetchClosedOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error)

	// FetchMyTrades 查询个人成交记录
	FetchMyTrades(ctx context.Context, symbol string, since types.ExTimestamp, limit int) ([]*model.Trade, error)

	// FetchOrderTrades 查询某个订单的成交记录
	FetchOrderTrades(ctx context.Context, id, symbol string) ([]*model.Trade, error)

	// ========== 账户信息 ==========

	// FetchBalance 查询余额，code 为空时查询默认币种
	FetchBalance(ctx context.Context, code string) (*model.Balances, error)

	// FetchDeposits 查询充值记录
	FetchDeposits(ctx context.Context, code string, since types.ExTimestamp, limit int) ([]*model.Transaction, error)

	// FetchWithdrawals 查询提现记录
	FetchWithdrawals(ctx context.Context, code string, since types.ExTimestamp, limit int) ([]*model.Transaction, error)

	// Withdraw 发起提现
	Withdraw(ctx context.Context, code string, amount decimal.Decimal, address string, params *types.ExValues) (*model.Transaction, error)
}
