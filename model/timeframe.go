package model

import "fmt"

// Timeframe K线周期
type Timeframe string

const (
	// Timeframe1m 1分钟
	Timeframe1m Timeframe = "1m"
	// Timeframe3m 3分钟
	Timeframe3m Timeframe = "3m"
	// Timeframe5m 5分钟
	Timeframe5m Timeframe = "5m"
	// Timeframe15m 15分钟
	Timeframe15m Timeframe = "15m"
	// Timeframe30m 30分钟
	Timeframe30m Timeframe = "30m"
	// Timeframe1h 1小时
	Timeframe1h Timeframe = "1h"
	// Timeframe2h 2小时
	Timeframe2h Timeframe = "2h"
	// Timeframe3h 3小时
	Timeframe3h Timeframe = "3h"
	// Timeframe6h 6小时
	Timeframe6h Timeframe = "6h"
	// Timeframe12h 12小时
	Timeframe12h Timeframe = "12h"
	// Timeframe1d 1天
	Timeframe1d Timeframe = "1d"
	// Timeframe1w 1周
	Timeframe1w Timeframe = "1w"
	// Timeframe1M 1月
	Timeframe1M Timeframe = "1M"
	// Timeframe1y 1年
	Timeframe1y Timeframe = "1y"
)

var timeframeSeconds = map[Timeframe]int64{
	Timeframe1m:  60,
	Timeframe3m:  180,
	Timeframe5m:  300,
	Timeframe15m: 900,
	Timeframe30m: 1800,
	Timeframe1h:  3600,
	Timeframe2h:  7200,
	Timeframe3h:  10800,
	Timeframe6h:  21600,
	Timeframe12h: 43200,
	Timeframe1d:  86400,
	Timeframe1w:  604800,
	Timeframe1M:  2592000,
	Timeframe1y:  31536000,
}

// Seconds 周期对应的秒数，未知周期返回错误
func (t Timeframe) Seconds() (int64, error) {
	sec, ok := timeframeSeconds[t]
	if !ok {
		return 0, fmt.Errorf("timeframe: unknown %q", string(t))
	}
	return sec, nil
}
