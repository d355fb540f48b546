package bybit

import (
	"github.com/shopspring/decimal"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

// ToBybitSymbol 转换统一符号为交易所市场ID (BTC/USD -> BTCUSD)
func ToBybitSymbol(symbol string) (string, error) {
	base, quote, err := common.ParseSymbol(symbol)
	if err != nil {
		return "", err
	}
	return base + quote, nil
}

// roundToStep 将值对齐到步长的整数倍，步长缺失或为零时原样返回
func roundToStep(value decimal.Decimal, step types.ExNumber) decimal.Decimal {
	if !step.Valid() || step.IsZero() {
		return value
	}
	s := step.Decimal()
	return value.Div(s).Round(0).Mul(s)
}

// amountToPrecision 数量按市场步长对齐
func amountToPrecision(market *model.Market, amount decimal.Decimal) string {
	return roundToStep(amount, market.Precision.Amount).String()
}

// priceToPrecision 价格按市场tick对齐
func priceToPrecision(market *model.Market, price decimal.Decimal) string {
	return roundToStep(price, market.Precision.Price).String()
}
