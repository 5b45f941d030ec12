package endpoint_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gauss-project/ipfsclient/pkg/endpoint"
)

func writeDescriptor(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "api")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	for _, tc := range []struct {
		desc       string
		descriptor string
		want       string
		wantErr    bool
	}{
		{
			desc:       "ip4 and tcp",
			descriptor: "/ip4/127.0.0.1/tcp/5001",
			want:       "http://127.0.0.1:5001/",
		},
		{
			desc:       "tcp before ip",
			descriptor: "/tcp/5001/ip4/127.0.0.1",
			want:       "http://127.0.0.1:5001/",
		},
		{
			desc:       "ip6 and tcp",
			descriptor: "/ip6/::1/tcp/5001",
			want:       "http://[::1]:5001/",
		},
		{
			desc:       "trailing newline",
			descriptor: "/ip4/127.0.0.1/tcp/5001\n",
			want:       "http://127.0.0.1:5001/",
		},
		{
			desc:       "missing tcp component",
			descriptor: "/ip4/127.0.0.1",
			wantErr:    true,
		},
		{
			desc:       "missing ip component",
			descriptor: "/tcp/5001",
			wantErr:    true,
		},
		{
			desc:       "two ip components",
			descriptor: "/ip4/127.0.0.1/ip4/10.0.0.1/tcp/5001",
			wantErr:    true,
		},
		{
			desc:       "unsupported component",
			descriptor: "/ip4/127.0.0.1/tcp/5001/http",
			wantErr:    true,
		},
		{
			desc:       "dns component",
			descriptor: "/dns4/localhost/tcp/5001",
			wantErr:    true,
		},
		{
			desc:       "not a multiaddr",
			descriptor: "127.0.0.1:5001",
			wantErr:    true,
		},
		{
			desc:       "empty file",
			descriptor: "",
			wantErr:    true,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			r := endpoint.NewResolver(endpoint.WithAPIPath(writeDescriptor(t, tc.descriptor)))

			u, err := r.Resolve()
			if tc.wantErr {
				if !errors.Is(err, endpoint.ErrLocalAPIUnavailable) {
					t.Fatalf("got error %v, want %v", err, endpoint.ErrLocalAPIUnavailable)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := u.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveMissingDescriptor(t *testing.T) {
	r := endpoint.NewResolver(endpoint.WithAPIPath(filepath.Join(t.TempDir(), "api")))

	if _, err := r.Resolve(); !errors.Is(err, endpoint.ErrLocalAPIUnavailable) {
		t.Fatalf("got error %v, want %v", err, endpoint.ErrLocalAPIUnavailable)
	}
}

func TestPublicGateway(t *testing.T) {
	if got := endpoint.PublicGateway.String(); got != "https://ipfs.io/" {
		t.Errorf("got %q, want %q", got, "https://ipfs.io/")
	}
}
