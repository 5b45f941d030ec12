package cmd_test

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gauss-project/ipfsclient/cmd/ipfsc/cmd"
	ipfstest "github.com/gauss-project/ipfsclient/pkg/ipfs/test"
)

// writeDescriptor points the client at the test listener the same way a
// running daemon does, through the api descriptor file.
func writeDescriptor(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	host, port, err := net.SplitHostPort(ts.Listener.Addr().String())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "api")
	if err := os.WriteFile(path, []byte(fmt.Sprintf("/ip4/%s/tcp/%s", host, port)), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetCmd(t *testing.T) {
	hash := ipfstest.RandomContentHash()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/get" {
			t.Errorf("got path %s, want /api/v0/get", r.URL.Path)
		}
		fmt.Fprint(w, "file contents")
	}))
	t.Cleanup(ts.Close)

	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("get", hash.String(), "--api-path", writeDescriptor(t, ts), "--verbosity", "silent"),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	if got := outputBuf.String(); got != "file contents" {
		t.Errorf("got output %q, want %q", got, "file contents")
	}
}

func TestAddCmd(t *testing.T) {
	hash := ipfstest.RandomContentHash()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v0/add" {
			t.Errorf("got path %s, want /api/v0/add", r.URL.Path)
		}
		fmt.Fprintf(w, `{"Name":"file","Hash":"%s","Size":"5"}`, hash)
	}))
	t.Cleanup(ts.Close)

	var outputBuf bytes.Buffer
	if err := newCommand(t,
		cmd.WithArgs("add", "--api-path", writeDescriptor(t, ts), "--verbosity", "silent"),
		cmd.WithInput(bytes.NewBufferString("hello")),
		cmd.WithOutput(&outputBuf),
	).Execute(); err != nil {
		t.Fatal(err)
	}

	want := hash.String() + "\n"
	if got := outputBuf.String(); got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}
