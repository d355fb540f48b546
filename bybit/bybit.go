package bybit

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dillonko/ccxt/common"
	"github.com/dillonko/ccxt/exchange"
	"github.com/dillonko/ccxt/model"
	"github.com/dillonko/ccxt/types"
)

const (
	// Name 交易所名称
	Name = "bybit"

	apiURL     = "https://api.bybit.com"
	testnetURL = "https://api-testnet.bybit.com"
)

// Exchange Bybit交易所实现
type Exchange struct {
	opts      exchange.Options
	transport common.Transport
	signer    *signer

	// timeDiff 本地毫秒时间减服务器毫秒时间
	timeDiff atomic.Int64

	mu              sync.RWMutex
	marketsBySymbol map[string]*model.Market
	marketsByID     map[string]*model.Market
}

// New 创建Bybit交易所实例
func New(opts exchange.Options) (*Exchange, error) {
	opts = opts.Normalize()

	baseURL := apiURL
	if opts.Testnet {
		baseURL = testnetURL
	}
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}

	client := common.NewHTTPClient()
	if opts.Proxy != "" {
		if err := client.SetProxy(opts.Proxy); err != nil {
			return nil, err
		}
	}
	if opts.HTTPTimeout > 0 {
		client.SetTimeout(opts.HTTPTimeout)
	}
	client.SetDebug(opts.Debug)

	e := &Exchange{
		opts:      opts,
		transport: client,
		signer: &signer{
			apiKey:     opts.APIKey,
			secretKey:  opts.SecretKey,
			baseURL:    baseURL,
			recvWindow: opts.RecvWindow,
		},
	}
	e.timeDiff.Store(opts.TimeDifference)
	return e, nil
}

// Name 返回交易所名称
func (e *Exchange) Name() string {
	return Name
}

// SetTransport 替换HTTP传输层，主要用于测试
func (e *Exchange) SetTransport(t common.Transport) {
	e.transport = t
}

// nonce 签名用时间戳，本地时间扣除与服务器的偏移
func (e *Exchange) nonce() int64 {
	return time.Now().UnixMilli() - e.timeDiff.Load()
}

// request 发送请求并完成两级错误分类
//
// 响应体能解出信封且 ret_code 非 0 时按业务错误码归类，
// 解不出信封时退回按HTTP状态码归类。
func (e *Exchange) request(ctx context.Context, r route, params *types.ExValues) (*response, error) {
	req, err := e.signer.Sign(r, params, e.nonce())
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var env response
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, exchange.NewError(classifyHTTPStatus(resp.StatusCode), Name, 0, string(resp.Body))
		}
		return nil, exchange.NewError(exchange.ErrExchange, Name, 0, string(resp.Body))
	}

	if env.RetCode != 0 {
		return nil, exchange.NewError(classifyRetCode(env.RetCode), Name, env.RetCode, string(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, exchange.NewError(classifyHTTPStatus(resp.StatusCode), Name, 0, string(resp.Body))
	}
	return &env, nil
}
