package bybit

import (
	"context"
	"time"

	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/types"
)

// FetchTime 获取服务器时间
func (e *Exchange) FetchTime(ctx context.Context) (types.ExTimestamp, error) {
	env, err := e.request(ctx, routeTime, nil)
	if err != nil {
		return types.ExTimestamp{}, err
	}
	ts := types.ParseTimestampSeconds(env.TimeNow)
	if !ts.Valid() {
		return types.ExTimestamp{}, exchange.NewError(exchange.ErrExchange, Name, 0, "invalid time_now: "+env.TimeNow)
	}
	return ts, nil
}

// LoadTimeDifference 同步本地时钟与服务器时钟的偏移
func (e *Exchange) LoadTimeDifference(ctx context.Context) (int64, error) {
	serverTime, err := e.FetchTime(ctx)
	if err != nil {
		return 0, err
	}
	after := time.Now().UnixMilli()
	diff := after - serverTime.UnixMilliOrZero()
	e.timeDiff.Store(diff)
	return diff, nil
}
