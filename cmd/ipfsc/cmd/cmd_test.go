package cmd_test

import (
	"testing"

	"github.com/gauss-project/ipfsclient/cmd/ipfsc/cmd"
)

func newCommand(t *testing.T, opts ...cmd.Option) *cmd.Command {
	t.Helper()

	c, err := cmd.NewCommand(append(opts, cmd.WithHomeDir(t.TempDir()))...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}
