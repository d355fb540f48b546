package bybit

import (
	"encoding/json"

	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// response 统一响应信封
//
// ret_code 为 0 表示业务成功，Result 延迟解析。
type response struct {
	RetCode int64           `json:"ret_code"`
	RetMsg  string          `json:"ret_msg"`
	ExtCode string          `json:"ext_code"`
	ExtInfo string          `json:"ext_info"`
	Result  json.RawMessage `json:"result"`
	TimeNow string          `json:"time_now"`
}

// rawSymbol 合约信息
type rawSymbol struct {
	Name          string         `json:"name"`
	BaseCurrency  string         `json:"base_currency"`
	QuoteCurrency string         `json:"quote_currency"`
	PriceScale    int            `json:"price_scale"`
	TakerFee      types.ExNumber `json:"taker_fee"`
	MakerFee      types.ExNumber `json:"maker_fee"`
	PriceFilter   struct {
		MinPrice types.ExNumber `json:"min_price"`
		MaxPrice types.ExNumber `json:"max_price"`
		TickSize types.ExNumber `json:"tick_size"`
	} `json:"price_filter"`
	LotSizeFilter struct {
		MinTradingQty types.ExNumber `json:"min_trading_qty"`
		MaxTradingQty types.ExNumber `json:"max_trading_qty"`
		QtyStep       types.ExNumber `json:"qty_step"`
	} `json:"lot_size_filter"`

	Info map[string]any `json:"-"`
}

func (r *rawSymbol) UnmarshalJSON(data []byte) error {
	type alias rawSymbol
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawSymbol(a)
	return nil
}

// rawTicker 24小时行情
type rawTicker struct {
	Symbol        string         `json:"symbol"`
	BidPrice      types.ExNumber `json:"bid_price"`
	AskPrice      types.ExNumber `json:"ask_price"`
	LastPrice     types.ExNumber `json:"last_price"`
	PrevPrice24H  types.ExNumber `json:"prev_price_24h"`
	Price24HPcnt  types.ExNumber `json:"price_24h_pcnt"`
	HighPrice24H  types.ExNumber `json:"high_price_24h"`
	LowPrice24H   types.ExNumber `json:"low_price_24h"`
	Turnover24H   types.ExNumber `json:"turnover_24h"`
	Volume24H     types.ExNumber `json:"volume_24h"`
	BestBidAmount types.ExNumber `json:"best_bid_amount"`
	BestAskAmount types.ExNumber `json:"best_ask_amount"`

	Info map[string]any `json:"-"`
}

func (r *rawTicker) UnmarshalJSON(data []byte) error {
	type alias rawTicker
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawTicker(a)
	return nil
}

// rawOHLCV K线
type rawOHLCV struct {
	OpenTime int64          `json:"open_time"`
	Open     types.ExNumber `json:"open"`
	High     types.ExNumber `json:"high"`
	Low      types.ExNumber `json:"low"`
	Close    types.ExNumber `json:"close"`
	Volume   types.ExNumber `json:"volume"`
	Turnover types.ExNumber `json:"turnover"`
}

// rawTrade 成交记录
//
// 公开成交使用 id/qty/side/time 字段，个人成交使用
// trade_id/amount/direction/timestamp 字段，两种形态共用一个结构。
type rawTrade struct {
	ID             json.Number       `json:"id"`
	TradeID        string            `json:"trade_id"`
	Symbol         string            `json:"symbol"`
	InstrumentName string            `json:"instrument_name"`
	Price          types.ExNumber    `json:"price"`
	Qty            types.ExNumber    `json:"qty"`
	Amount         types.ExNumber    `json:"amount"`
	Side           string            `json:"side"`
	Direction      string            `json:"direction"`
	Time           types.ExTimestamp `json:"time"`
	Timestamp      types.ExTimestamp `json:"timestamp"`
	Fee            types.ExNumber    `json:"fee"`
	FeeCurrency    string            `json:"fee_currency"`
	OrderID        string            `json:"order_id"`
	OrderType      string            `json:"order_type"`

	Info map[string]any `json:"-"`
}

func (r *rawTrade) UnmarshalJSON(data []byte) error {
	type alias rawTrade
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawTrade(a)
	return nil
}

// rawOrder 订单
//
// price 在市价单里是字符串占位符，解析为无效的 ExNumber。
type rawOrder struct {
	OrderID             string            `json:"order_id"`
	InstrumentName      string            `json:"instrument_name"`
	OrderType           string            `json:"order_type"`
	OrderState          string            `json:"order_state"`
	Direction           string            `json:"direction"`
	Price               types.ExNumber    `json:"price"`
	AveragePrice        types.ExNumber    `json:"average_price"`
	Amount              types.ExNumber    `json:"amount"`
	FilledAmount        types.ExNumber    `json:"filled_amount"`
	Commission          types.ExNumber    `json:"commission"`
	CreationTimestamp   types.ExTimestamp `json:"creation_timestamp"`
	LastUpdateTimestamp types.ExTimestamp `json:"last_update_timestamp"`
	Trades              []rawTrade        `json:"trades"`

	Info map[string]any `json:"-"`
}

func (r *rawOrder) UnmarshalJSON(data []byte) error {
	type alias rawOrder
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawOrder(a)
	return nil
}

// rawOrderResult 下单/改单响应，成交列表与订单并列返回
type rawOrderResult struct {
	Order  rawOrder   `json:"order"`
	Trades []rawTrade `json:"trades"`
}

// rawAccount 单币种钱包
type rawAccount struct {
	Equity           types.ExNumber `json:"equity"`
	AvailableBalance types.ExNumber `json:"available_balance"`
	UsedMargin       types.ExNumber `json:"used_margin"`
}

// rawTransaction 充提记录
//
// 提现记录携带 fee 字段，充值记录没有，借此区分类型。
type rawTransaction struct {
	ID                json.Number       `json:"id"`
	TransactionID     string            `json:"transaction_id"`
	Currency          string            `json:"currency"`
	Address           string            `json:"address"`
	Amount            types.ExNumber    `json:"amount"`
	Fee               types.ExNumber    `json:"fee"`
	State             string            `json:"state"`
	CreatedTimestamp  types.ExTimestamp `json:"created_timestamp"`
	ReceivedTimestamp types.ExTimestamp `json:"received_timestamp"`
	UpdatedTimestamp  types.ExTimestamp `json:"updated_timestamp"`

	Info map[string]any `json:"-"`
}

func (r *rawTransaction) UnmarshalJSON(data []byte) error {
	type alias rawTransaction
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawTransaction(a)
	return nil
}

// rawTransactionList 充提记录列表
type rawTransactionList struct {
	Count int              `json:"count"`
	Data  []rawTransaction `json:"data"`
}

// rawTradeList 个人成交列表
type rawTradeList struct {
	Trades  []rawTrade `json:"trades"`
	HasMore bool       `json:"has_more"`
}

// rawOrderBook 订单簿快照
type rawOrderBook struct {
	InstrumentName string            `json:"instrument_name"`
	Timestamp      types.ExTimestamp `json:"timestamp"`
	ChangeID       int64             `json:"change_id"`
	Bids           []model.BookLevel `json:"bids"`
	Asks           []model.BookLevel `json:"asks"`

	Info map[string]any `json:"-"`
}

func (r *rawOrderBook) UnmarshalJSON(data []byte) error {
	type alias rawOrderBook
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &a.Info); err != nil {
		return err
	}
	*r = rawOrderBook(a)
	return nil
}
