package webfetch

import (
	"net"
	"net/url"
	"strconv"

	ma "github.com/multiformats/go-multiaddr"

	"toolbox/go-backend/internal/domains/contracts"
)

// MultiaddrToURL turns an address such as /dns4/example.com/tcp/443/https into
// an http(s) URL. Without an explicit http, https or tls component the scheme
// follows the port: 443 means https, anything else http.
func MultiaddrToURL(addr string) (string, error) {
	m, err := ma.NewMultiaddr(addr)
	if err != nil {
		return "", contracts.InvalidInputf("invalid multiaddr: %v", err)
	}
	host := ""
	for _, code := range []int{ma.P_DNS, ma.P_DNS4, ma.P_DNS6, ma.P_IP4, ma.P_IP6} {
		if v, err := m.ValueForProtocol(code); err == nil && v != "" {
			host = v
			break
		}
	}
	if host == "" {
		return "", contracts.InvalidInput("multiaddr has no host component")
	}
	port := ""
	if v, err := m.ValueForProtocol(ma.P_TCP); err == nil {
		port = v
	}
	scheme := ""
	hasTLS := false
	for _, p := range m.Protocols() {
		switch p.Code {
		case ma.P_HTTPS:
			scheme = "https"
		case ma.P_TLS:
			hasTLS = true
		case ma.P_HTTP:
			if hasTLS {
				scheme = "https"
			} else {
				scheme = "http"
			}
		}
	}
	if scheme == "" {
		scheme = "http"
		if port == "443" {
			scheme = "https"
		}
	}
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	u := url.URL{Scheme: scheme, Host: host, Path: "/"}
	if port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return "", contracts.InvalidInputf("invalid tcp port %q", port)
		}
		u.Host = net.JoinHostPort(host, port)
	} else if net.ParseIP(host) != nil && net.ParseIP(host).To4() == nil {
		u.Host = "[" + host + "]"
	}
	return u.String(), nil
}
