package bybit

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// CreateOrder 创建订单
//
// 限价单和止损限价单必须提供 price，止损限价单还需在 params 里
// 提供 stop_price。数量和价格按市场步长对齐后发送。
func (e *Exchange) CreateOrder(ctx context.Context, symbol string, orderType model.OrderType, side model.OrderSide, amount decimal.Decimal, price types.ExNumber, params *types.ExValues) (*model.Order, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}
	r, ok := createOrderRoutes[side]
	if !ok {
		return nil, exchange.NewError(exchange.ErrInvalidOrder, Name, 0, "invalid side "+string(side))
	}

	request := params.Clone()
	request.Set("instrument_name", market.ID)
	request.Set("amount", amountToPrecision(market, amount))
	request.Set("type", string(orderType))

	priceRequired := orderType == model.OrderTypeLimit || orderType == model.OrderTypeStopLimit
	stopPriceRequired := orderType == model.OrderTypeStopLimit
	if priceRequired {
		if !price.Valid() {
			return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "createOrder requires a price argument for a "+string(orderType)+" order")
		}
		request.Set("price", priceToPrecision(market, price.Decimal()))
	}
	if stopPriceRequired {
		if !request.Has("stop_price") {
			return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "createOrder requires a stop_price param for a "+string(orderType)+" order")
		}
		if stopPrice, err := decimal.NewFromString(request.Get("stop_price")); err == nil {
			request.Set("stop_price", priceToPrecision(market, stopPrice))
		}
	}

	env, err := e.request(ctx, r, request)
	if err != nil {
		return nil, err
	}

	var result rawOrderResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	result.Order.Trades = result.Trades
	return e.parseOrder(&result.Order), nil
}

// EditOrder 修改订单的数量和价格，两者均为必填
func (e *Exchange) EditOrder(ctx context.Context, id, symbol string, amount decimal.Decimal, price types.ExNumber) (*model.Order, error) {
	if amount.Sign() <= 0 {
		return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "editOrder requires an amount argument")
	}
	if !price.Valid() {
		return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "editOrder requires a price argument")
	}
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}

	request := types.NewExValues()
	request.Set("order_id", id)
	request.Set("amount", amountToPrecision(market, amount))
	request.Set("price", priceToPrecision(market, price.Decimal()))

	env, err := e.request(ctx, routeEdit, request)
	if err != nil {
		return nil, err
	}

	var result rawOrderResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	result.Order.Trades = result.Trades
	return e.parseOrder(&result.Order), nil
}

// CancelOrder 取消订单
func (e *Exchange) CancelOrder(ctx context.Context, id, symbol string) (*model.Order, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	request := types.NewExValues()
	request.Set("order_id", id)

	env, err := e.request(ctx, routeCancel, request)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := json.Unmarshal(env.Result, &raw); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return e.parseOrder(&raw), nil
}

// CancelAllOrders 取消订单，symbol 为空时取消全部市场的订单
func (e *Exchange) CancelAllOrders(ctx context.Context, symbol string) error {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return err
	}

	r := routeCancelAll
	request := types.NewExValues()
	if symbol != "" {
		market, err := e.Market(symbol)
		if err != nil {
			return err
		}
		r = routeCancelAllByInstrument
		request.Set("instrument_name", market.ID)
	}

	_, err := e.request(ctx, r, request)
	return err
}

// FetchOrder 查询订单
func (e *Exchange) FetchOrder(ctx context.Context, id, symbol string) (*model.Order, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	request := types.NewExValues()
	request.Set("order_id", id)

	env, err := e.request(ctx, routeOrderState, request)
	if err != nil {
		return nil, err
	}

	var raw rawOrder
	if err := json.Unmarshal(env.Result, &raw); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return e.parseOrder(&raw), nil
}

// fetchOrdersBy 按交易对或默认币种查询订单列表
func (e *Exchange) fetchOrdersBy(ctx context.Context, byCurrency, byInstrument route, symbol string, limit int) ([]*model.Order, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	r := byCurrency
	request := types.NewExValues()
	if symbol == "" {
		request.Set("currency", e.opts.DefaultCurrencyCode)
	} else {
		market, err := e.Market(symbol)
		if err != nil {
			return nil, err
		}
		r = byInstrument
		request.Set("instrument_name", market.ID)
	}

	env, err := e.request(ctx, r, request)
	if err != nil {
		return nil, err
	}

	var raws []rawOrder
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}

	orders := e.parseOrders(raws)
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// FetchOpenOrders 查询未完成订单，symbol 为空时按默认币种查询
func (e *Exchange) FetchOpenOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error) {
	return e.fetchOrdersBy(ctx, routeOpenOrdersByCurrency, routeOpenOrdersByInstrument, symbol, limit)
}

// FetchClosedOrders 查询历史订单，symbol 为空时按默认币种查询
func (e *Exchange) FetchClosedOrders(ctx context.Context, symbol string, limit int) ([]*model.Order, error) {
	return e.fetchOrdersBy(ctx, routeOrderHistoryByCurrency, routeOrderHistoryByInstrument, symbol, limit)
}

// FetchMyTrades 查询个人成交记录
//
// 端点按 交易对/默认币种 × 是否带起始时间 四选一。
func (e *Exchange) FetchMyTrades(ctx context.Context, symbol string, since types.ExTimestamp, limit int) ([]*model.Trade, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	request := types.NewExValues()
	request.Set("include_old", "true")

	var r route
	if symbol == "" {
		request.Set("currency", e.opts.DefaultCurrencyCode)
		if since.Valid() {
			r = routeUserTradesByCurrencyAndTime
			request.SetInt64("start_timestamp", since.UnixMilliOrZero())
		} else {
			r = routeUserTradesByCurrency
		}
	} else {
		market, err := e.Market(symbol)
		if err != nil {
			return nil, err
		}
		request.Set("instrument_name", market.ID)
		if since.Valid() {
			r = routeUserTradesByInstrumentAndTime
			request.SetInt64("start_timestamp", since.UnixMilliOrZero())
		} else {
			r = routeUserTradesByInstrument
		}
	}
	if limit > 0 {
		// 交易所默认每页10条
		request.SetInt64("count", int64(limit))
	}

	env, err := e.request(ctx, r, request)
	if err != nil {
		return nil, err
	}

	var result rawTradeList
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return e.parseTrades(result.Trades), nil
}

// FetchOrderTrades 查询某个订单的成交记录
func (e *Exchange) FetchOrderTrades(ctx context.Context, id, symbol string) ([]*model.Trade, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	request := types.NewExValues()
	request.Set("order_id", id)

	env, err := e.request(ctx, routeUserTradesByOrder, request)
	if err != nil {
		return nil, err
	}

	var result rawTradeList
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return e.parseTrades(result.Trades), nil
}
