package bybit

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/types"
)

func newTestSigner() *signer {
	return &signer{
		apiKey:     "test-key",
		secretKey:  "test-secret",
		baseURL:    "https://api.bybit.com",
		recvWindow: 5000,
	}
}

func TestSigner_PublicRequest(t *testing.T) {
	s := &signer{baseURL: "https://api.bybit.com"}

	params := types.NewExValues()
	params.Set("symbol", "BTCUSD")

	req, err := s.Sign(routeTickers, params, 1577850000000)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, req.Method)
	require.Equal(t, "https://api.bybit.com/v2/public/tickers?symbol=BTCUSD", req.URL)
	require.Empty(t, req.Body)
}

func TestSigner_PublicRequestNeedsNoCredentials(t *testing.T) {
	s := &signer{baseURL: "https://api.bybit.com"}
	_, err := s.Sign(routeTime, nil, 0)
	require.NoError(t, err)
}

func TestSigner_PrivateRequestMissingCredentials(t *testing.T) {
	s := &signer{baseURL: "https://api.bybit.com"}
	_, err := s.Sign(routeWalletBalance, nil, 1577850000000)
	require.Error(t, err)
	require.True(t, errors.Is(err, exchange.ErrCredentialsMissing))
}

func TestSigner_PrivateGetSignature(t *testing.T) {
	s := newTestSigner()

	params := types.NewExValues()
	params.Set("coin", "BTC")

	req, err := s.Sign(routeWalletBalance, params, 1577850000000)
	require.NoError(t, err)

	// 签名串为排序后的参数，签名追加在查询串末尾
	auth := "api_key=test-key&coin=BTC&recvWindow=5000&timestamp=1577850000000"
	want := "https://api.bybit.com/v2/private/wallet/balance?" + auth +
		"&sign=" + common.SignHMAC256(auth, "test-secret")
	require.Equal(t, want, req.URL)
}

func TestSigner_SignatureIgnoresInsertionOrder(t *testing.T) {
	s := newTestSigner()

	a := types.NewExValues()
	a.Set("currency", "BTC")
	a.Set("count", "10")

	b := types.NewExValues()
	b.Set("count", "10")
	b.Set("currency", "BTC")

	reqA, err := s.Sign(routeDeposits, a, 1577850000000)
	require.NoError(t, err)
	reqB, err := s.Sign(routeDeposits, b, 1577850000000)
	require.NoError(t, err)
	require.Equal(t, reqA.URL, reqB.URL)
}

func TestSigner_PostRequestSignsJSONBody(t *testing.T) {
	s := newTestSigner()
	postRoute := route{scopePrivate, http.MethodPost, "order/create"}

	params := types.NewExValues()
	params.Set("symbol", "BTCUSD")

	req, err := s.Sign(postRoute, params, 1577850000000)
	require.NoError(t, err)
	require.Equal(t, "https://api.bybit.com/v2/private/order/create", req.URL)
	require.Equal(t, "application/json", req.Headers["Content-Type"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	require.Equal(t, "BTCUSD", body["symbol"])
	require.Equal(t, "test-key", body["api_key"])
	require.Equal(t, "1577850000000", body["timestamp"])

	auth := "api_key=test-key&recvWindow=5000&symbol=BTCUSD&timestamp=1577850000000"
	require.Equal(t, common.SignHMAC256(auth, "test-secret"), body["sign"])
}

func TestRoute_RequestPath(t *testing.T) {
	cases := []struct {
		r    route
		want string
	}{
		{routeTime, "/v2/public/time"},
		{routeKlineList, "/v2/public/kline/list"},
		{routeOrderState, "/v2/private/get_order_state"},
		{route{scopeOpenAPI, http.MethodGet, "wallet/withdraw/list"}, "/open-api/wallet/withdraw/list"},
		{route{scopePosition, http.MethodPost, "change-position-margin"}, "/change-position-margin/position/change-position-margin"},
		{route{scopeUser, http.MethodGet, "leverage"}, "/leverage/user/leverage"},
	}
	for _, tc := range cases {
		if got := tc.r.requestPath(); got != tc.want {
			t.Errorf("requestPath(%s/%s)=%q, want %q", tc.r.scope, tc.r.path, got, tc.want)
		}
	}
}

func TestRoute_Signed(t *testing.T) {
	if routeTime.signed() {
		t.Error("public routes must not require a signature")
	}
	for _, r := range []route{routeWalletBalance, {scopeOpenAPI, http.MethodGet, "x"}, {scopePosition, http.MethodPost, "x"}, {scopeUser, http.MethodGet, "x"}} {
		if !r.signed() {
			t.Errorf("%s routes must require a signature", r.scope)
		}
	}
}

func TestCreateOrderRoutes(t *testing.T) {
	if got := createOrderRoutes["buy"].requestPath(); got != "/v2/private/buy" {
		t.Errorf("buy path=%q", got)
	}
	if got := createOrderRoutes["sell"].requestPath(); got != "/v2/private/sell" {
		t.Errorf("sell path=%q", got)
	}
}
