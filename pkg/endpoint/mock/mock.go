package mock

import (
	"net/url"

	"github.com/gauss-project/ipfsclient/pkg/endpoint"
)

// Ensure mock Resolver implements the endpoint interface.
var _ endpoint.Interface = (*Resolver)(nil)

// Resolver is the mock endpoint resolver implementation.
type Resolver struct {
	base      *url.URL
	err       error
	resolveFn func() (*url.URL, error)
}

// Option is a function that applies an option to a Resolver.
type Option func(*Resolver)

// NewResolver constructs a new mock Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithBaseURL will set the base URL returned by Resolve.
func WithBaseURL(u *url.URL) Option {
	return func(r *Resolver) {
		r.base = u
	}
}

// WithError will set the error returned by Resolve.
func WithError(err error) Option {
	return func(r *Resolver) {
		r.err = err
	}
}

// WithResolveFunc will set the Resolve function implementation.
func WithResolveFunc(fn func() (*url.URL, error)) Option {
	return func(r *Resolver) {
		r.resolveFn = fn
	}
}

// Resolve is the mock Resolve implementation.
func (r *Resolver) Resolve() (*url.URL, error) {
	if r.resolveFn != nil {
		return r.resolveFn()
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.base, nil
}
