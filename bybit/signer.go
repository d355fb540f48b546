package bybit

import (
	"net/http"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/types"
)

// signer 请求签名器
//
// 私有请求的签名串为按键名排序后URL编码的参数串，
// 参数集固定包含 api_key、recvWindow、timestamp 三项。
type signer struct {
	apiKey     string
	secretKey  string
	baseURL    string
	recvWindow int64
}

// Sign 构造可发送的HTTP请求
//
// 公共端点直接拼接查询参数；私有端点补齐凭证参数后签名，
// GET 将签名追加到查询串末尾，POST 将签名并入JSON请求体。
func (s *signer) Sign(r route, params *types.ExValues, nonce int64) (*common.Request, error) {
	query := params.Clone()

	if !r.signed() {
		return &common.Request{
			Method: r.method,
			URL:    s.baseURL + query.JoinPath(r.requestPath()),
		}, nil
	}

	if s.apiKey == "" || s.secretKey == "" {
		return nil, exchange.NewError(exchange.ErrCredentialsMissing, Name, 0, "apiKey and secretKey required for "+r.path)
	}

	query.Set("api_key", s.apiKey)
	query.SetInt64("recvWindow", s.recvWindow)
	query.SetInt64("timestamp", nonce)
	auth := query.EncodeSignedQuery()
	signature := common.SignHMAC256(auth, s.secretKey)

	if r.method == http.MethodPost {
		query.Set("sign", signature)
		body, err := query.EncodeJSON()
		if err != nil {
			return nil, err
		}
		return &common.Request{
			Method:  r.method,
			URL:     s.baseURL + r.requestPath(),
			Headers: map[string]string{"Content-Type": "application/json"},
			Body:    body,
		}, nil
	}

	return &common.Request{
		Method: r.method,
		URL:    s.baseURL + r.requestPath() + "?" + auth + "&sign=" + signature,
	}, nil
}
