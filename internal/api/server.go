package api

import (
	"context"
	"net"
	"net/http"
	"time"
)

// NewServer 创建 HTTP 服务器.
// 所有请求的 context 派生自 base, 取消 base 会结束仍在推送的飞行帧流.
func NewServer(addr string, h http.Handler, base context.Context) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return base
		},
	}
}
