package bybit

import (
	"net/http"

	"github.com/dillonko/ccxt/model"
)

// apiScope 接口分组，决定路径前缀和是否签名
type apiScope string

const (
	scopePublic   apiScope = "public"
	scopePrivate  apiScope = "private"
	scopeOpenAPI  apiScope = "openapi"
	scopePosition apiScope = "position"
	scopeUser     apiScope = "user"
)

// route 一个具体的REST端点
type route struct {
	scope  apiScope
	method string
	path   string
}

// requestPath 根据分组拼接请求路径
//
//	public/private: /v2/{scope}/{path}
//	openapi:        /open-api/{path}
//	position/user:  /{path}/{scope}/{path}
func (r route) requestPath() string {
	switch r.scope {
	case scopePublic, scopePrivate:
		return "/v2/" + string(r.scope) + "/" + r.path
	case scopeOpenAPI:
		return "/open-api/" + r.path
	default:
		return "/" + r.path + "/" + string(r.scope) + "/" + r.path
	}
}

// signed 是否需要签名
func (r route) signed() bool {
	return r.scope != scopePublic
}

// 公共行情端点
var (
	routeTime           = route{scopePublic, http.MethodGet, "time"}
	routeSymbols        = route{scopePublic, http.MethodGet, "symbols"}
	routeTickers        = route{scopePublic, http.MethodGet, "tickers"}
	routeKlineList      = route{scopePublic, http.MethodGet, "kline/list"}
	routeTradingRecords = route{scopePublic, http.MethodGet, "trading-records"}
	routeOrderBook      = route{scopePublic, http.MethodGet, "get_order_book"}
)

// 私有交易/账户端点
var (
	routeWalletBalance                 = route{scopePrivate, http.MethodGet, "wallet/balance"}
	routeOrderState                    = route{scopePrivate, http.MethodGet, "get_order_state"}
	routeEdit                          = route{scopePrivate, http.MethodGet, "edit"}
	routeCancel                        = route{scopePrivate, http.MethodGet, "cancel"}
	routeCancelAll                     = route{scopePrivate, http.MethodGet, "cancel_all"}
	routeCancelAllByInstrument         = route{scopePrivate, http.MethodGet, "cancel_all_by_instrument"}
	routeOpenOrdersByCurrency          = route{scopePrivate, http.MethodGet, "get_open_orders_by_currency"}
	routeOpenOrdersByInstrument        = route{scopePrivate, http.MethodGet, "get_open_orders_by_instrument"}
	routeOrderHistoryByCurrency        = route{scopePrivate, http.MethodGet, "get_order_history_by_currency"}
	routeOrderHistoryByInstrument      = route{scopePrivate, http.MethodGet, "get_order_history_by_instrument"}
	routeUserTradesByOrder             = route{scopePrivate, http.MethodGet, "get_user_trades_by_order"}
	routeUserTradesByCurrency          = route{scopePrivate, http.MethodGet, "get_user_trades_by_currency"}
	routeUserTradesByCurrencyAndTime   = route{scopePrivate, http.MethodGet, "get_user_trades_by_currency_and_time"}
	routeUserTradesByInstrument        = route{scopePrivate, http.MethodGet, "get_user_trades_by_instrument"}
	routeUserTradesByInstrumentAndTime = route{scopePrivate, http.MethodGet, "get_user_trades_by_instrument_and_time"}
	routeDeposits                      = route{scopePrivate, http.MethodGet, "get_deposits"}
	routeWithdrawals                   = route{scopePrivate, http.MethodGet, "get_withdrawals"}
	routeWithdraw                      = route{scopePrivate, http.MethodGet, "withdraw"}
)

// createOrderRoutes 下单端点按方向区分
var createOrderRoutes = map[model.OrderSide]route{
	model.OrderSideBuy:  {scopePrivate, http.MethodGet, "buy"},
	model.OrderSideSell: {scopePrivate, http.MethodGet, "sell"},
}
