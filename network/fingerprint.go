package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/vidsel/vidsel/log"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// FingerprintTransport performs TLS handshakes with a Chrome ClientHello.
//
// HTTPS requests go over HTTP/2 first. If that fails before a response
// arrives, the request is replayed once over HTTP/1.1 with ALPN limited to
// http/1.1. Plain HTTP requests use the HTTP/1.1 transport directly.
type FingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

// NewFingerprintTransport returns a ready FingerprintTransport.
func NewFingerprintTransport() *FingerprintTransport {
	return &FingerprintTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialChrome(ctx, network, addr, false)
			},
		},
		h1: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, network, addr, true)
			},
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *FingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	if req.Context().Err() != nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}

		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, err
		}
		retry.Body = body
	}

	log.Debugf("h2 round trip to %s failed, retrying over http/1.1: %v", req.URL.Host, err)
	return t.h1.RoundTrip(retry)
}

// CloseIdleConnections closes idle connections of both transports.
func (t *FingerprintTransport) CloseIdleConnections() {
	t.h2.CloseIdleConnections()
	t.h1.CloseIdleConnections()
}

// dialChrome opens a TLS connection with Chrome 120's ClientHello.
// With onlyH1 the ALPN extension advertises http/1.1 alone.
func dialChrome(ctx context.Context, network, addr string, onlyH1 bool) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	config := &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}

	var tlsConn *utls.UConn
	if onlyH1 {
		spec, err := utls.UTLSIdToSpec(utls.HelloChrome_120)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("chrome hello spec: %w", err)
		}

		for _, ext := range spec.Extensions {
			if alpn, ok := ext.(*utls.ALPNExtension); ok {
				alpn.AlpnProtocols = []string{"http/1.1"}
			}
		}

		tlsConn = utls.UClient(conn, config, utls.HelloCustom)
		if err := tlsConn.ApplyPreset(&spec); err != nil {
			conn.Close()
			return nil, fmt.Errorf("apply hello spec: %w", err)
		}
	} else {
		tlsConn = utls.UClient(conn, config, utls.HelloChrome_120)
	}

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
