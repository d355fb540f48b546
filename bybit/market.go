package bybit

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// intervals 统一周期到交易所 interval 参数的映射
var intervals = map[model.Timeframe]string{
	model.Timeframe1m:  "1",
	model.Timeframe3m:  "3",
	model.Timeframe5m:  "5",
	model.Timeframe15m: "15",
	model.Timeframe30m: "30",
	model.Timeframe1h:  "60",
	model.Timeframe2h:  "120",
	model.Timeframe3h:  "180",
	model.Timeframe6h:  "360",
	model.Timeframe12h: "720",
	model.Timeframe1d:  "D",
	model.Timeframe1w:  "W",
	model.Timeframe1M:  "M",
	model.Timeframe1y:  "Y",
}

// LoadMarkets 加载市场信息，reload 为 false 时复用缓存
func (e *Exchange) LoadMarkets(ctx context.Context, reload bool) error {
	if !reload {
		e.mu.RLock()
		loaded := e.marketsBySymbol != nil
		e.mu.RUnlock()
		if loaded {
			return nil
		}
	}

	markets, err := e.FetchMarkets(ctx)
	if err != nil {
		return err
	}

	bySymbol := make(map[string]*model.Market, len(markets))
	byID := make(map[string]*model.Market, len(markets))
	for _, m := range markets {
		bySymbol[m.Symbol] = m
		byID[m.ID] = m
	}

	e.mu.Lock()
	e.marketsBySymbol = bySymbol
	e.marketsByID = byID
	e.mu.Unlock()
	return nil
}

// FetchMarkets 拉取市场列表
func (e *Exchange) FetchMarkets(ctx context.Context) ([]*model.Market, error) {
	if e.opts.AdjustForTimeDifference {
		if _, err := e.LoadTimeDifference(ctx); err != nil {
			return nil, err
		}
	}

	env, err := e.request(ctx, routeSymbols, nil)
	if err != nil {
		return nil, err
	}

	var raws []rawSymbol
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}

	markets := make([]*model.Market, 0, len(raws))
	for i := range raws {
		markets = append(markets, parseMarket(&raws[i]))
	}
	return markets, nil
}

// Market 获取单个市场信息，统一符号和交易所市场ID均可检索
func (e *Exchange) Market(symbol string) (*model.Market, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if m, ok := e.marketsBySymbol[symbol]; ok {
		return m, nil
	}
	if m, ok := e.marketsByID[symbol]; ok {
		return m, nil
	}
	if id, err := ToBybitSymbol(symbol); err == nil {
		if m, ok := e.marketsByID[id]; ok {
			return m, nil
		}
	}
	return nil, exchange.NewError(exchange.ErrMarketNotFound, Name, 0, symbol)
}

// Markets 从内存中获取所有市场信息，按统一符号排序
func (e *Exchange) Markets() []*model.Market {
	e.mu.RLock()
	defer e.mu.RUnlock()

	markets := make([]*model.Market, 0, len(e.marketsBySymbol))
	for _, m := range e.marketsBySymbol {
		markets = append(markets, m)
	}
	sort.Slice(markets, func(i, j int) bool {
		return markets[i].Symbol < markets[j].Symbol
	})
	return markets
}

// FetchTicker 获取单个行情
func (e *Exchange) FetchTicker(ctx context.Context, symbol string) (*model.Ticker, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("symbol", market.ID)
	env, err := e.request(ctx, routeTickers, params)
	if err != nil {
		return nil, err
	}

	var raws []rawTicker
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	if len(raws) == 0 {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, "empty ticker result for "+symbol)
	}
	return e.parseTicker(&raws[0]), nil
}

// FetchTickers 批量获取行情，symbols 为空时返回全部
func (e *Exchange) FetchTickers(ctx context.Context, symbols ...string) (model.Tickers, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}

	env, err := e.request(ctx, routeTickers, nil)
	if err != nil {
		return nil, err
	}

	var raws []rawTicker
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}

	wanted := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		wanted[s] = true
	}

	tickers := make(model.Tickers, len(raws))
	for i := range raws {
		ticker := e.parseTicker(&raws[i])
		if len(wanted) > 0 && !wanted[ticker.Symbol] {
			continue
		}
		tickers[ticker.Symbol] = ticker
	}
	return tickers, nil
}

// FetchOrderBook 获取订单簿快照，limit 为0时使用交易所默认深度
func (e *Exchange) FetchOrderBook(ctx context.Context, symbol string, limit int) (*model.OrderBook, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("instrument_name", market.ID)
	if limit > 0 {
		params.SetInt64("depth", int64(limit))
	}
	env, err := e.request(ctx, routeOrderBook, params)
	if err != nil {
		return nil, err
	}

	var raw rawOrderBook
	if err := json.Unmarshal(env.Result, &raw); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return e.parseOrderBook(market.Symbol, &raw), nil
}

// FetchTrades 获取公开成交记录
func (e *Exchange) FetchTrades(ctx context.Context, symbol string, since types.ExTimestamp, limit int) ([]*model.Trade, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("symbol", market.ID)
	if limit > 0 {
		params.SetInt64("count", int64(limit))
	}
	env, err := e.request(ctx, routeTradingRecords, params)
	if err != nil {
		return nil, err
	}

	var raws []rawTrade
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}
	return filterTrades(e.parseTrades(raws), since, limit), nil
}

// filterTrades 按起始时间和数量截取成交
func filterTrades(trades []*model.Trade, since types.ExTimestamp, limit int) []*model.Trade {
	if since.Valid() {
		filtered := make([]*model.Trade, 0, len(trades))
		for _, t := range trades {
			if t.Timestamp.Valid() && t.Timestamp.UnixMilliOrZero() < since.UnixMilliOrZero() {
				continue
			}
			filtered = append(filtered, t)
		}
		trades = filtered
	}
	if limit > 0 && len(trades) > limit {
		trades = trades[:limit]
	}
	return trades
}

// FetchOHLCV 获取K线数据
//
// since 缺失时必须提供 limit，起始时间按当前时间回退 limit 个周期推算。
func (e *Exchange) FetchOHLCV(ctx context.Context, symbol string, timeframe model.Timeframe, since types.ExTimestamp, limit int) (model.OHLCVs, error) {
	if err := e.LoadMarkets(ctx, false); err != nil {
		return nil, err
	}
	market, err := e.Market(symbol)
	if err != nil {
		return nil, err
	}

	interval, ok := intervals[timeframe]
	if !ok {
		return nil, exchange.NewError(exchange.ErrNotSupported, Name, 0, "timeframe "+string(timeframe))
	}
	duration, err := timeframe.Seconds()
	if err != nil {
		return nil, err
	}

	params := types.NewExValues()
	params.Set("symbol", market.ID)
	params.Set("interval", interval)
	if !since.Valid() {
		if limit == 0 {
			return nil, exchange.NewError(exchange.ErrArgumentsRequired, Name, 0, "fetchOHLCV requires a since argument or a limit argument")
		}
		params.SetInt64("from", time.Now().Unix()-int64(limit)*duration)
	} else {
		params.SetInt64("from", since.UnixMilliOrZero()/1000)
	}
	if limit > 0 {
		// 交易所默认和上限均为200
		params.SetInt64("limit", int64(limit))
	}

	env, err := e.request(ctx, routeKlineList, params)
	if err != nil {
		return nil, err
	}

	var raws []rawOHLCV
	if err := json.Unmarshal(env.Result, &raws); err != nil {
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(env.Result))
	}

	ohlcvs := make(model.OHLCVs, 0, len(raws))
	for i := range raws {
		ohlcvs = append(ohlcvs, parseOHLCV(&raws[i]))
	}
	sort.Slice(ohlcvs, func(i, j int) bool {
		return ohlcvs[i].Timestamp.UnixMilliOrZero() < ohlcvs[j].Timestamp.UnixMilliOrZero()
	})
	return ohlcvs, nil
}
