// Package ipfsapi exposes one operation per capability of the daemon
// control API. Every operation independently resolves the local endpoint
// before building its URL; operations with a read-only public equivalent
// substitute the public gateway when no local daemon is reachable.
package ipfsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gauss-project/ipfsclient/pkg/endpoint"
	"github.com/gauss-project/ipfsclient/pkg/ipfs"
	"github.com/gauss-project/ipfsclient/pkg/logging"
	"github.com/gauss-project/ipfsclient/pkg/multipart"
)

// addTimeout bounds the add operation; uploads are the only long-running
// request the client dispatches.
const addTimeout = 600 * time.Second

// Service talks to the daemon control API. It carries no mutable state
// between calls; concurrent invocations are independent.
type Service struct {
	client   *http.Client
	resolver endpoint.Interface
	gateway  *url.URL
	logger   logging.Logger
	metrics  metrics
}

// Options are the adjustable parameters of a Service.
type Options struct {
	// HTTPClient dispatches the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Gateway overrides the public gateway base URL.
	Gateway *url.URL
}

// New constructs a new Service.
func New(resolver endpoint.Interface, logger logging.Logger, o Options) *Service {
	client := o.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	gateway := o.Gateway
	if gateway == nil {
		gateway = endpoint.PublicGateway
	}
	return &Service{
		client:   client,
		resolver: resolver,
		gateway:  gateway,
		logger:   logger,
		metrics:  newMetrics(),
	}
}

// Add stores the payload stream on the daemon. The payload is wrapped into
// a streamed multipart body; it is never buffered in full. A non-negative
// length announces the payload size up front. There is no public
// equivalent, so a missing local daemon fails the call.
func (s *Service) Add(ctx context.Context, payload io.Reader, length int64) (AddResponse, error) {
	u, err := s.apiURL("add")
	if err != nil {
		return AddResponse{}, err
	}
	boundary, err := multipart.Boundary()
	if err != nil {
		return AddResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, addTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), multipart.NewReader(payload, length, boundary))
	if err != nil {
		return AddResponse{}, &SendError{Err: err}
	}
	req.Header.Set("Content-Type", multipart.ContentType(boundary))

	resp, err := s.do(req)
	if err != nil {
		return AddResponse{}, err
	}
	defer resp.Body.Close()

	var r AddResponse
	if err := decodeJSON(resp.Body, &r); err != nil {
		return AddResponse{}, err
	}
	s.logger.Debugf("ipfs api: added %s", r.Hash)
	return r, nil
}

// Get streams the content behind hash. The returned body is handed to the
// caller unmodified; closing it is the caller's responsibility. On a
// non-success status no body is streamed.
func (s *Service) Get(ctx context.Context, hash ipfs.ContentHash) (io.ReadCloser, error) {
	u, err := s.apiURL("get")
	if err == nil {
		q := u.Query()
		q.Set("arg", "/ipfs/"+hash.String())
		u.RawQuery = q.Encode()
	} else {
		if u, err = s.gatewayURL(err, hash.String()); err != nil {
			return nil, err
		}
	}

	resp, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if err := s.checkStatus(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Resolve resolves a content path to the identifier it currently points
// to.
func (s *Service) Resolve(ctx context.Context, p ipfs.Path) (ipfs.ContentHash, error) {
	u, err := s.apiURL("resolve")
	if err == nil {
		q := u.Query()
		q.Set("arg", p.String())
		u.RawQuery = q.Encode()
	} else {
		if u, err = s.gatewayURL(err, p.String()); err != nil {
			return ipfs.ContentHash{}, err
		}
	}

	resp, err := s.get(ctx, u)
	if err != nil {
		return ipfs.ContentHash{}, err
	}
	if err := s.checkStatus(resp); err != nil {
		return ipfs.ContentHash{}, err
	}
	defer resp.Body.Close()

	var r resolveResponse
	if err := decodeJSON(resp.Body, &r); err != nil {
		return ipfs.ContentHash{}, err
	}
	hash, err := ipfs.ParseContentHash(r.Path[strings.LastIndex(r.Path, "/")+1:])
	if err != nil {
		return ipfs.ContentHash{}, &JSONPayloadError{Err: err}
	}
	return hash, nil
}

// Ls lists the links of the object behind name. There is no public
// equivalent, so a missing local daemon fails the call.
func (s *Service) Ls(ctx context.Context, name string) (LsResponse, error) {
	u, err := s.apiURL("ls")
	if err != nil {
		return LsResponse{}, err
	}
	q := u.Query()
	q.Set("arg", name)
	u.RawQuery = q.Encode()

	resp, err := s.get(ctx, u)
	if err != nil {
		return LsResponse{}, err
	}
	if err := s.checkStatus(resp); err != nil {
		return LsResponse{}, err
	}
	defer resp.Body.Close()

	var r LsResponse
	if err := decodeJSON(resp.Body, &r); err != nil {
		return LsResponse{}, err
	}
	return r, nil
}

// ObjectPatchAddLink creates a new object based on modify with a link
// named name to add. With create set, intermediate directories are created
// on the way. Local daemon only.
func (s *Service) ObjectPatchAddLink(ctx context.Context, modify ipfs.ContentHash, name string, add ipfs.ContentHash, create bool) (ObjectResponse, error) {
	u, err := s.apiURL("object/patch/add-link")
	if err != nil {
		return ObjectResponse{}, err
	}
	// The daemon reads the three arg parameters positionally.
	q := u.Query()
	q.Add("arg", modify.String())
	q.Add("arg", name)
	q.Add("arg", add.String())
	q.Set("create", strconv.FormatBool(create))
	u.RawQuery = q.Encode()

	resp, err := s.get(ctx, u)
	if err != nil {
		return ObjectResponse{}, err
	}
	if err := s.checkStatus(resp); err != nil {
		return ObjectResponse{}, err
	}
	defer resp.Body.Close()

	var r ObjectResponse
	if err := decodeJSON(resp.Body, &r); err != nil {
		return ObjectResponse{}, err
	}
	return r, nil
}

// NamePublish publishes hash under the named key. The response body is
// returned as text; invalid byte sequences are replaced, never reported
// as an error.
func (s *Service) NamePublish(ctx context.Context, hash ipfs.ContentHash, key string) (string, error) {
	u, err := s.apiURL("name/publish")
	if err == nil {
		q := u.Query()
		q.Set("arg", "/ipfs/"+hash.String())
		q.Set("key", key)
		u.RawQuery = q.Encode()
	} else {
		if u, err = s.gatewayURL(err, hash.String()); err != nil {
			return "", err
		}
	}

	resp, err := s.get(ctx, u)
	if err != nil {
		return "", err
	}
	if err := s.checkStatus(resp); err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &PayloadError{Err: err}
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
}

// KeyList lists the keys of the daemon keystore. Local daemon only.
func (s *Service) KeyList(ctx context.Context) (KeyListResponse, error) {
	u, err := s.apiURL("key/list")
	if err != nil {
		return KeyListResponse{}, err
	}

	resp, err := s.get(ctx, u)
	if err != nil {
		return KeyListResponse{}, err
	}
	if err := s.checkStatus(resp); err != nil {
		return KeyListResponse{}, err
	}
	defer resp.Body.Close()

	var r KeyListResponse
	if err := decodeJSON(resp.Body, &r); err != nil {
		return KeyListResponse{}, err
	}
	return r, nil
}

// apiURL resolves the local control endpoint and joins the operation path.
// The endpoint is re-resolved on every operation.
func (s *Service) apiURL(op string) (*url.URL, error) {
	base, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return base.Parse("api/v0/" + op)
}

// gatewayURL substitutes the public gateway for a failed local resolution.
// Only a missing local api is eligible; any other resolution failure is
// returned as is.
func (s *Service) gatewayURL(cause error, ref string) (*url.URL, error) {
	if !errors.Is(cause, endpoint.ErrLocalAPIUnavailable) {
		return nil, cause
	}
	s.metrics.GatewayFallbackCount.Inc()
	s.logger.Debugf("ipfs api: using public gateway: %v", cause)
	return s.gateway.Parse(ref)
}

func (s *Service) get(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &SendError{Err: err}
	}
	return s.do(req)
}

func (s *Service) do(req *http.Request) (*http.Response, error) {
	s.metrics.RequestCount.Inc()
	s.logger.Tracef("ipfs api: %s %s", req.Method, req.URL)
	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.SendErrorCount.Inc()
		return nil, &SendError{Err: err}
	}
	return resp, nil
}

// checkStatus closes the body and fails on any non-success status so that
// no payload is decoded or streamed from an error response.
func (s *Service) checkStatus(resp *http.Response) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.metrics.ResponseErrorCount.Inc()
		resp.Body.Close()
		return &ResponseError{StatusCode: resp.StatusCode}
	}
	return nil
}

func decodeJSON(body io.Reader, v interface{}) error {
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return &JSONPayloadError{Err: err}
	}
	return nil
}
