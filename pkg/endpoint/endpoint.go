// Package endpoint discovers the HTTP base URL of the control API of a
// local daemon, and carries the public gateway used as a read-only
// fallback when no local daemon is reachable.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
)

// ErrLocalAPIUnavailable is returned when the address descriptor file is
// missing, unreadable, unparsable, or does not describe a plain ip/tcp
// endpoint.
var ErrLocalAPIUnavailable = errors.New("local api unavailable")

// PublicGateway is the base URL of the shared read-only gateway.
var PublicGateway = mustParseURL("https://ipfs.io/")

func mustParseURL(s string) *url.URL {
	u, err := url.Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Interface resolves the base URL operations should target.
type Interface interface {
	Resolve() (*url.URL, error)
}

// Resolver reads the daemon address descriptor file and synthesizes the
// control API base URL from it. The descriptor is re-read on every call;
// nothing is cached.
type Resolver struct {
	apiPath string
}

// Option is a function that applies an option to a Resolver.
type Option func(*Resolver)

// NewResolver constructs a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithAPIPath overrides the descriptor file location. An empty path keeps
// the default <user-home>/.ipfs/api.
func WithAPIPath(path string) Option {
	return func(r *Resolver) {
		r.apiPath = path
	}
}

// Resolve reads the descriptor and returns the local control API base URL.
// The descriptor must be a multiaddr built from exactly one ip4 or ip6
// component and exactly one tcp component; any other component type means
// the format is not understood.
func (r *Resolver) Resolve() (*url.URL, error) {
	path := r.apiPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: home directory: %v", ErrLocalAPIUnavailable, err)
		}
		path = filepath.Join(home, ".ipfs", "api")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalAPIUnavailable, err)
	}
	addr, err := ma.NewMultiaddr(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalAPIUnavailable, err)
	}

	var ips, ports []string
	var unsupported string
	ma.ForEach(addr, func(c ma.Component) bool {
		switch c.Protocol().Code {
		case ma.P_IP4, ma.P_IP6:
			ips = append(ips, c.Value())
		case ma.P_TCP:
			ports = append(ports, c.Value())
		default:
			unsupported = c.Protocol().Name
			return false
		}
		return true
	})
	if unsupported != "" {
		return nil, fmt.Errorf("%w: unsupported address component %q", ErrLocalAPIUnavailable, unsupported)
	}
	if len(ips) != 1 || len(ports) != 1 {
		return nil, fmt.Errorf("%w: descriptor needs exactly one ip and one tcp component", ErrLocalAPIUnavailable)
	}

	u, err := url.Parse(fmt.Sprintf("http://%s/", net.JoinHostPort(ips[0], ports[0])))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalAPIUnavailable, err)
	}
	return u, nil
}
