package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Request 待发送的HTTP请求
type Request struct {
	// Method 请求方法
	Method string
	// URL 完整请求地址（含查询参数）
	URL string
	// Headers 请求头
	Headers map[string]string
	// Body 请求体
	Body []byte
}

// Response HTTP响应
//
// 非2xx状态码不作为错误返回，响应体原样保留供上层分类。
type Response struct {
	// StatusCode 状态码
	StatusCode int
	// Headers 响应头
	Headers http.Header
	// Body 响应体
	Body []byte
}

// Transport HTTP传输接口
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTPClient HTTP客户端
type HTTPClient struct {
	client  *http.Client
	headers map[string]string
	proxy   string
	debug   bool
	log     *logrus.Logger
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient() *HTTPClient {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
		log:     log,
	}
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		c.proxy = ""
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	c.client.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}
	c.proxy = proxyURL
	return nil
}

// GetProxy 获取当前代理设置
func (c *HTTPClient) GetProxy() string {
	return c.proxy
}

// SetHeader 设置请求头
func (c *HTTPClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetDebug 设置是否启用调试模式
func (c *HTTPClient) SetDebug(debug bool) {
	c.debug = debug
	if debug {
		c.log.SetLevel(logrus.DebugLevel)
	} else {
		c.log.SetLevel(logrus.InfoLevel)
	}
}

// Do 发送HTTP请求
func (c *HTTPClient) Do(ctx context.Context, r *Request) (*Response, error) {
	var reqBody io.Reader
	if len(r.Body) > 0 {
		reqBody = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	if c.debug {
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"url":        r.URL,
			"body":       string(r.Body),
		}).Debug("http request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.debug {
			c.log.WithField("request_id", requestID).
				Warnf("close response body: %v", closeErr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.debug {
		c.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"status":     resp.StatusCode,
			"body":       string(respBody),
		}).Debug("http response")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}, nil
}
