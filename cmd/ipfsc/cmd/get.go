package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

func (c *command) initGetCmd() {
	cmd := &cobra.Command{
		Use:   "get <hash>",
		Short: "Stream the content behind an identifier",
		Long: `Stream the content behind an identifier to standard output or to a
file. When no local daemon is reachable the content is fetched from the
public gateway instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmd.Help()
			}
			hash, err := ipfs.ParseContentHash(args[0])
			if err != nil {
				return err
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			body, err := s.Get(ctx, hash)
			if err != nil {
				return err
			}
			defer body.Close()

			out := cmd.OutOrStdout()
			if name := c.config.GetString(optionNameOutput); name != "" {
				f, err := os.Create(name)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			_, err = io.Copy(out, body)
			return err
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	cmd.Flags().StringP(optionNameOutput, "o", "", "write the content to a file instead of standard output")
	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)
}
