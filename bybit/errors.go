package bybit

import (
	"net/http"

	"github.com/dillonko/ccxt/exchange"
)

// httpStatusErrors HTTP层错误码映射
var httpStatusErrors = map[int]error{
	http.StatusForbidden: exchange.ErrRateLimit,
}

// retCodeErrors 交易所业务错误码映射，未命中的码归为 ErrExchange
var retCodeErrors = map[int64]error{
	10001: exchange.ErrBadRequest,         // parameter error
	10002: exchange.ErrInvalidNonce,       // request expired, check your timestamp and recv_window
	10003: exchange.ErrAuthentication,     // invalid apikey
	10004: exchange.ErrAuthentication,     // invalid sign
	10005: exchange.ErrPermissionDenied,   // permission denied for current apikey
	10006: exchange.ErrRateLimit,          // too many requests
	10007: exchange.ErrAuthentication,     // api_key not found in your request parameters
	10010: exchange.ErrPermissionDenied,   // request ip mismatch
	10017: exchange.ErrBadRequest,         // request path not found or request method is invalid
	20001: exchange.ErrInvalidOrder,       // order not exists
	20003: exchange.ErrInvalidOrder,       // missing parameter side
	20004: exchange.ErrInvalidOrder,       // invalid parameter side
	20005: exchange.ErrInvalidOrder,       // missing parameter symbol
	20006: exchange.ErrInvalidOrder,       // invalid parameter symbol
	20007: exchange.ErrInvalidOrder,       // missing parameter order_type
	20008: exchange.ErrInvalidOrder,       // invalid parameter order_type
	20009: exchange.ErrInvalidOrder,       // missing parameter qty
	20010: exchange.ErrInvalidOrder,       // qty must be greater than 0
	20011: exchange.ErrInvalidOrder,       // qty must be an integer
	20012: exchange.ErrInvalidOrder,       // qty must be greater than zero and less than 1 million
	20013: exchange.ErrInvalidOrder,       // missing parameter price
	20014: exchange.ErrInvalidOrder,       // price must be greater than 0
	20015: exchange.ErrInvalidOrder,       // missing parameter time_in_force
	20016: exchange.ErrInvalidOrder,       // invalid value for parameter time_in_force
	20017: exchange.ErrInvalidOrder,       // missing parameter order_id
	20018: exchange.ErrInvalidOrder,       // invalid date format
	20019: exchange.ErrInvalidOrder,       // missing parameter stop_px
	20020: exchange.ErrInvalidOrder,       // missing parameter base_price
	20021: exchange.ErrInvalidOrder,       // missing parameter stop_order_id
	20022: exchange.ErrBadRequest,         // missing parameter leverage
	20023: exchange.ErrBadRequest,         // leverage must be a number
	20031: exchange.ErrBadRequest,         // leverage must be greater than zero
	20070: exchange.ErrBadRequest,         // missing parameter margin
	20071: exchange.ErrBadRequest,         // margin must be greater than zero
	20084: exchange.ErrBadRequest,         // order_id or order_link_id is required
	30001: exchange.ErrBadRequest,         // order_link_id is repeated
	30003: exchange.ErrInvalidOrder,       // qty must be more than the minimum allowed
	30004: exchange.ErrInvalidOrder,       // qty must be less than the maximum allowed
	30005: exchange.ErrInvalidOrder,       // price exceeds maximum allowed
	30007: exchange.ErrInvalidOrder,       // price exceeds minimum allowed
	30008: exchange.ErrInvalidOrder,       // invalid order_type
	30009: exchange.ErrExchange,           // no position found
	30010: exchange.ErrInsufficientFunds,  // insufficient wallet balance
	30011: exchange.ErrPermissionDenied,   // operation not allowed as position is undergoing liquidation
	30012: exchange.ErrPermissionDenied,   // operation not allowed as position is undergoing ADL
	30013: exchange.ErrPermissionDenied,   // position is in liq or adl status
	30014: exchange.ErrInvalidOrder,       // invalid closing order, qty should not greater than size
	30015: exchange.ErrInvalidOrder,       // invalid closing order, side should be opposite
	30016: exchange.ErrExchange,           // TS and SL must be cancelled first while closing position
	30017: exchange.ErrInvalidOrder,       // estimated fill price cannot be lower than current Buy liq_price
	30018: exchange.ErrInvalidOrder,       // estimated fill price cannot be higher than current Sell liq_price
	30019: exchange.ErrInvalidOrder,       // cannot attach TP/SL params for non-zero position when placing non-opening position order
	30020: exchange.ErrInvalidOrder,       // position already has TP/SL params
	30021: exchange.ErrInvalidOrder,       // cannot afford estimated position_margin
	30022: exchange.ErrInvalidOrder,       // estimated buy liq_price cannot be higher than current mark_price
	30023: exchange.ErrInvalidOrder,       // estimated sell liq_price cannot be lower than current mark_price
	30024: exchange.ErrInvalidOrder,       // cannot set TP/SL/TS for zero-position
	30025: exchange.ErrInvalidOrder,       // trigger price should bigger than 10% of last price
	30026: exchange.ErrInvalidOrder,       // price too high
	30027: exchange.ErrInvalidOrder,       // price set for Take profit should be higher than Last Traded Price
	30028: exchange.ErrInvalidOrder,       // price set for Stop loss should be between Liquidation price and Last Traded Price
	30029: exchange.ErrInvalidOrder,       // price set for Stop loss should be between Last Traded Price and Liquidation price
	30030: exchange.ErrInvalidOrder,       // price set for Take profit should be lower than Last Traded Price
	30031: exchange.ErrInsufficientFunds,  // insufficient available balance for order cost
	30032: exchange.ErrInvalidOrder,       // order has been filled or cancelled
	30033: exchange.ErrRateLimit,          // the number of stop orders exceeds maximum limit allowed
	30034: exchange.ErrOrderNotFound,      // no order found
	30035: exchange.ErrRateLimit,          // too fast to cancel
	30036: exchange.ErrExchange,           // the expected position value after order execution exceeds the current risk limit
	30037: exchange.ErrInvalidOrder,       // order already cancelled
	30041: exchange.ErrExchange,           // no position found
	30042: exchange.ErrInsufficientFunds,  // insufficient wallet balance
	30043: exchange.ErrPermissionDenied,   // operation not allowed as position is undergoing liquidation
	30044: exchange.ErrPermissionDenied,   // operation not allowed as position is undergoing ADL
	30045: exchange.ErrPermissionDenied,   // operation not allowed as position is not normal status
	30049: exchange.ErrInsufficientFunds,  // insufficient available balance
	30050: exchange.ErrExchange,           // any adjustments made will trigger immediate liquidation
	30051: exchange.ErrExchange,           // due to risk limit, cannot adjust leverage
	30052: exchange.ErrExchange,           // leverage can not less than 1
	30054: exchange.ErrExchange,           // position margin is invalid
	30057: exchange.ErrExchange,           // requested quantity of contracts exceeds risk limit
	30063: exchange.ErrExchange,           // reduce-only rule not satisfied
	30067: exchange.ErrInsufficientFunds,  // insufficient available balance
	30068: exchange.ErrExchange,           // exit value must be positive
	34026: exchange.ErrExchange,           // the limit is no change
}

// classifyRetCode 将业务错误码归类为错误种类
func classifyRetCode(code int64) error {
	if kind, ok := retCodeErrors[code]; ok {
		return kind
	}
	return exchange.ErrExchange
}

// classifyHTTPStatus 将非2xx状态码归类为错误种类
func classifyHTTPStatus(status int) error {
	if kind, ok := httpStatusErrors[status]; ok {
		return kind
	}
	return exchange.ErrExchange
}
