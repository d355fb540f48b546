package types

import (
	"encoding/json"
	"testing"
)

func TestExValues_EncodeQuery_PreservesInsertionOrder(t *testing.T) {
	v := NewExValues()
	v.Set("symbol", "BTCUSD")
	v.Set("interval", "1")
	v.SetInt64("from", 1583952540)

	if got := v.EncodeQuery(); got != "symbol=BTCUSD&interval=1&from=1583952540" {
		t.Fatalf("EncodeQuery()=%q", got)
	}
}

func TestExValues_EncodeSignedQuery_SortsKeys(t *testing.T) {
	v := NewExValues()
	v.Set("timestamp", "1577850000000")
	v.Set("api_key", "key")
	v.SetInt64("recvWindow", 5000)

	if got := v.EncodeSignedQuery(); got != "api_key=key&recvWindow=5000&timestamp=1577850000000" {
		t.Fatalf("EncodeSignedQuery()=%q", got)
	}
}

func TestExValues_EncodeQuery_EscapesValues(t *testing.T) {
	v := NewExValues()
	v.Set("symbol", "BTC/USD")

	if got := v.EncodeQuery(); got != "symbol=BTC%2FUSD" {
		t.Fatalf("EncodeQuery()=%q", got)
	}
}

func TestExValues_CloneNilReceiver(t *testing.T) {
	var v *ExValues
	c := v.Clone()
	if c == nil {
		t.Fatal("Clone of nil should return an empty set")
	}
	if c.Len() != 0 {
		t.Fatalf("Len()=%d, want 0", c.Len())
	}
	c.Set("a", "1")
	if c.Get("a") != "1" {
		t.Fatal("clone should be usable")
	}
}

func TestExValues_CloneIsDeep(t *testing.T) {
	v := NewExValues()
	v.Set("a", "1")

	c := v.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	if v.Get("a") != "1" {
		t.Fatalf("original mutated: a=%q", v.Get("a"))
	}
	if v.Has("b") {
		t.Fatal("original gained a key from the clone")
	}
}

func TestExValues_EncodeJSON(t *testing.T) {
	v := NewExValues()
	v.Set("order_id", "ETH-349249")
	v.Set("sign", "abc")

	b, err := v.EncodeJSON()
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["order_id"] != "ETH-349249" || m["sign"] != "abc" {
		t.Fatalf("EncodeJSON()=%s", b)
	}
}

func TestExValues_JoinPath(t *testing.T) {
	v := NewExValues()
	if got := v.JoinPath("/v2/public/time"); got != "/v2/public/time" {
		t.Fatalf("JoinPath()=%q", got)
	}
	v.Set("symbol", "BTCUSD")
	if got := v.JoinPath("/v2/public/tickers"); got != "/v2/public/tickers?symbol=BTCUSD" {
		t.Fatalf("JoinPath()=%q", got)
	}
}
