package eventchannel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
)

const textMessage = websocket.TextMessage

type wsDialer struct {
	dialer *websocket.Dialer
}

// NewWSDialer возвращает Dialer поверх gorilla/websocket.
func NewWSDialer() Dialer {
	return &wsDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: DefaultConnectTimeout,
		},
	}
}

func (d *wsDialer) DialContext(ctx context.Context, urlStr string) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, urlStr, nil)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, fmt.Errorf("websocket dial %s: %w", urlStr, err)
	}
	return conn, nil
}
