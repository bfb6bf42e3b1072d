package provider

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	texttranslator "github.com/YourCarma/text-translator"
	"golang.org/x/net/proxy"
)

// newHTTPClient builds the HTTP client used for provider traffic.
// No client-level timeout is set: each call is bounded by its context.
func newHTTPClient(cfg OpenAIConfig) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.UseProxy {
		if err := applyProxy(transport, cfg.ProxyAddress); err != nil {
			return nil, err
		}
	}

	return &http.Client{
		Transport: &userAgentTransport{
			base:      transport,
			userAgent: texttranslator.UserAgent(),
		},
	}, nil
}

// applyProxy routes all traffic of transport through the forward proxy at address.
func applyProxy(transport *http.Transport, address string) error {
	if address == "" {
		return fmt.Errorf("proxy address is empty")
	}

	u, err := url.Parse(address)
	if err != nil {
		return fmt.Errorf("invalid proxy address: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid proxy address %q: missing host", redactURL(address))
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return fmt.Errorf("creating socks proxy dialer: %w", err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return fmt.Errorf("socks proxy dialer does not support contexts")
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer.DialContext
	default:
		return fmt.Errorf("unsupported proxy scheme %q", u.Scheme)
	}

	return nil
}

// redactURL hides the password of a URL for logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	return u.Redacted()
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(req)
}
