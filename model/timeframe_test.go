package model

import "testing"

func TestTimeframe_Seconds(t *testing.T) {
	cases := []struct {
		tf   Timeframe
		want int64
	}{
		{Timeframe1m, 60},
		{Timeframe30m, 1800},
		{Timeframe1h, 3600},
		{Timeframe1d, 86400},
		{Timeframe1w, 604800},
		{Timeframe1M, 2592000},
		{Timeframe1y, 31536000},
	}
	for _, tc := range cases {
		got, err := tc.tf.Seconds()
		if err != nil {
			t.Fatalf("%s: %v", tc.tf, err)
		}
		if got != tc.want {
			t.Errorf("%s: Seconds()=%d, want %d", tc.tf, got, tc.want)
		}
	}
}

func TestTimeframe_SecondsUnknown(t *testing.T) {
	if _, err := Timeframe("7m").Seconds(); err == nil {
		t.Fatal("unknown timeframe should return an error")
	}
}
