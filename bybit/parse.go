package bybit

import (
	"sort"
	"strings"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// orderStatuses 交易所订单状态到统一状态的映射
var orderStatuses = map[string]model.OrderStatus{
	"open":      model.OrderStatusOpen,
	"cancelled": model.OrderStatusCanceled,
	"filled":    model.OrderStatusClosed,
	"rejected":  model.OrderStatusRejected,
}

// parseOrderStatus 未知状态原样透传
func parseOrderStatus(status string) model.OrderStatus {
	if s, ok := orderStatuses[status]; ok {
		return s
	}
	return model.OrderStatus(status)
}

// transactionStatuses 交易所充提状态到统一状态的映射
var transactionStatuses = map[string]model.TransactionStatus{
	"completed":   model.TransactionStatusOK,
	"unconfirmed": model.TransactionStatusPending,
}

// parseTransactionStatus 未知状态原样透传
func parseTransactionStatus(status string) model.TransactionStatus {
	if s, ok := transactionStatuses[status]; ok {
		return s
	}
	return model.TransactionStatus(status)
}

// parseMarket 解析合约信息
func parseMarket(raw *rawSymbol) *model.Market {
	base := strings.ToUpper(raw.BaseCurrency)
	quote := strings.ToUpper(raw.QuoteCurrency)
	return &model.Market{
		ID:     raw.Name,
		Symbol: common.NormalizeSymbol(base, quote),
		Base:   base,
		Quote:  quote,
		Type:   model.MarketTypeFuture,
		Active: nil,
		Taker:  raw.TakerFee,
		Maker:  raw.MakerFee,
		Precision: model.MarketPrecision{
			Amount: raw.LotSizeFilter.QtyStep,
			Price:  raw.PriceFilter.TickSize,
		},
		Limits: model.MarketLimits{
			Amount: model.MinMax{
				Min: raw.LotSizeFilter.MinTradingQty,
				Max: raw.LotSizeFilter.MaxTradingQty,
			},
			Price: model.MinMax{
				Min: raw.PriceFilter.MinPrice,
				Max: raw.PriceFilter.MaxPrice,
			},
		},
		Info: raw.Info,
	}
}

// resolveSymbol 按交易所市场ID解析统一符号，未知ID原样返回
func (e *Exchange) resolveSymbol(marketID string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if m, ok := e.marketsByID[marketID]; ok {
		return m.Symbol
	}
	return marketID
}

// parseTicker 解析行情
//
// 派生字段在任一输入缺失时保持缺失。BaseVolume 取 turnover_24h、
// QuoteVolume 取 volume_24h，沿用交易所接口的历史口径。
func (e *Exchange) parseTicker(raw *rawTicker) *model.Ticker {
	last := raw.LastPrice
	open := raw.PrevPrice24H
	baseVolume := raw.Turnover24H
	quoteVolume := raw.Volume24H
	two := types.NumberFromInt(2)
	hundred := types.NumberFromInt(100)
	return &model.Ticker{
		Symbol:      e.resolveSymbol(raw.Symbol),
		Bid:         raw.BidPrice,
		BidVolume:   raw.BestBidAmount,
		Ask:         raw.AskPrice,
		AskVolume:   raw.BestAskAmount,
		High:        raw.HighPrice24H,
		Low:         raw.LowPrice24H,
		Open:        open,
		Close:       last,
		Last:        last,
		Change:      last.Sub(open),
		Percentage:  raw.Price24HPcnt.Mul(hundred),
		Average:     open.Add(last).Div(two),
		VWAP:        quoteVolume.Div(baseVolume),
		BaseVolume:  baseVolume,
		QuoteVolume: quoteVolume,
		Info:        raw.Info,
	}
}

// parseOHLCV 解析K线，Volume 取 turnover 字段
func parseOHLCV(raw *rawOHLCV) *model.OHLCV {
	return &model.OHLCV{
		Timestamp: types.TimestampFromMilli(raw.OpenTime * 1000),
		Open:      raw.Open,
		High:      raw.High,
		Low:       raw.Low,
		Close:     raw.Close,
		Volume:    raw.Turnover,
	}
}

// parseTrade 解析成交，兼容公开成交和个人成交两种字段形态
func (e *Exchange) parseTrade(raw *rawTrade) *model.Trade {
	id := raw.ID.String()
	if id == "" {
		id = raw.TradeID
	}
	marketID := raw.Symbol
	if marketID == "" {
		marketID = raw.InstrumentName
	}
	side := raw.Side
	if side == "" {
		side = raw.Direction
	}
	amount := raw.Qty
	if !amount.Valid() {
		amount = raw.Amount
	}
	ts := raw.Time
	if !ts.Valid() {
		ts = raw.Timestamp
	}
	var fee *model.Fee
	if raw.Fee.Valid() {
		fee = &model.Fee{
			Currency: raw.FeeCurrency,
			Cost:     raw.Fee,
		}
	}
	return &model.Trade{
		ID:        id,
		OrderID:   raw.OrderID,
		Symbol:    e.resolveSymbol(marketID),
		Type:      raw.OrderType,
		Side:      strings.ToLower(side),
		Price:     raw.Price,
		Amount:    amount,
		Cost:      raw.Price.Mul(amount),
		Fee:       fee,
		Timestamp: ts,
		Info:      raw.Info,
	}
}

// parseTrades 批量解析成交
func (e *Exchange) parseTrades(raws []rawTrade) []*model.Trade {
	trades := make([]*model.Trade, 0, len(raws))
	for i := range raws {
		trades = append(trades, e.parseTrade(&raws[i]))
	}
	return trades
}

// parseOrder 解析订单
//
// 市价单的 price 字段是字符串占位符，解析后缺失，此时派生的
// Cost 同样缺失。手续费币种接口不返回，取配置的默认币种。
func (e *Exchange) parseOrder(raw *rawOrder) *model.Order {
	filled := raw.FilledAmount
	var lastTrade types.ExTimestamp
	if filled.Valid() && filled.Sign() > 0 {
		lastTrade = raw.LastUpdateTimestamp
	}
	var fee *model.Fee
	if raw.Commission.Valid() {
		fee = &model.Fee{
			Currency: e.opts.DefaultCurrencyCode,
			Cost:     raw.Commission.Abs(),
		}
	}
	return &model.Order{
		ID:                 raw.OrderID,
		Symbol:             e.resolveSymbol(raw.InstrumentName),
		Type:               model.OrderType(raw.OrderType),
		Side:               model.OrderSide(strings.ToLower(raw.Direction)),
		Price:              raw.Price,
		Average:            raw.AveragePrice,
		Amount:             raw.Amount,
		Filled:             filled,
		Remaining:          raw.Amount.Sub(filled),
		Cost:               raw.Price.Mul(filled),
		Status:             parseOrderStatus(raw.OrderState),
		Fee:                fee,
		Trades:             e.parseTrades(raw.Trades),
		Timestamp:          raw.CreationTimestamp,
		LastTradeTimestamp: lastTrade,
		Info:               raw.Info,
	}
}

// parseOrders 批量解析订单
func (e *Exchange) parseOrders(raws []rawOrder) []*model.Order {
	orders := make([]*model.Order, 0, len(raws))
	for i := range raws {
		orders = append(orders, e.parseOrder(&raws[i]))
	}
	return orders
}

// parseBalances 解析钱包余额
func parseBalances(accounts map[string]rawAccount, info map[string]any) *model.Balances {
	balances := &model.Balances{
		Accounts: make(map[string]*model.Balance, len(accounts)),
		Info:     info,
	}
	for currency, account := range accounts {
		balances.Accounts[strings.ToUpper(currency)] = &model.Balance{
			Free:  account.AvailableBalance,
			Used:  account.UsedMargin,
			Total: account.Equity,
		}
	}
	return balances
}

// parseTransaction 解析充提记录
//
// 提现记录携带 fee，充值记录没有，借此判定类型。
func parseTransaction(raw *rawTransaction, code string) *model.Transaction {
	currency := strings.ToUpper(raw.Currency)
	if currency == "" {
		currency = code
	}
	timestamp := raw.CreatedTimestamp
	if !timestamp.Valid() {
		timestamp = raw.ReceivedTimestamp
	}
	txType := model.TransactionTypeDeposit
	var fee *model.Fee
	if raw.Fee.Valid() {
		txType = model.TransactionTypeWithdrawal
		fee = &model.Fee{
			Currency: currency,
			Cost:     raw.Fee,
		}
	}
	return &model.Transaction{
		ID:        raw.ID.String(),
		TxID:      raw.TransactionID,
		Type:      txType,
		Currency:  currency,
		Amount:    raw.Amount,
		Address:   raw.Address,
		Status:    parseTransactionStatus(raw.State),
		Fee:       fee,
		Timestamp: timestamp,
		Updated:   raw.UpdatedTimestamp,
		Info:      raw.Info,
	}
}

// parseOrderBook 解析订单簿，买盘按价格降序、卖盘按价格升序
func (e *Exchange) parseOrderBook(symbol string, raw *rawOrderBook) *model.OrderBook {
	bids := append([]model.BookLevel(nil), raw.Bids...)
	asks := append([]model.BookLevel(nil), raw.Asks...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Price.Decimal().GreaterThan(bids[j].Price.Decimal())
	})
	sort.SliceStable(asks, func(i, j int) bool {
		return asks[i].Price.Decimal().LessThan(asks[j].Price.Decimal())
	})
	return &model.OrderBook{
		Symbol:    symbol,
		Bids:      bids,
		Asks:      asks,
		Nonce:     raw.ChangeID,
		Timestamp: raw.Timestamp,
		Info:      raw.Info,
	}
}
