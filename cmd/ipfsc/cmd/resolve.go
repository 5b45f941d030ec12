package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

func (c *command) initResolveCmd() {
	cmd := &cobra.Command{
		Use:   "resolve <path>",
		Short: "Resolve a content path to an identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmd.Help()
			}
			p, err := ipfs.ParsePathString(args[0])
			if err != nil {
				return err
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			hash, err := s.Resolve(ctx, p)
			if err != nil {
				return err
			}
			cmd.Println(hash)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)
}
