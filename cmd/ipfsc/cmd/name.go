package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

func (c *command) initNameCmd() {
	nameCmd := &cobra.Command{
		Use:   "name",
		Short: "Publish names",
	}

	publishCmd := &cobra.Command{
		Use:   "publish <hash>",
		Short: "Publish an identifier under a key",
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

			out, err := s.NamePublish(ctx, hash, c.config.GetString(optionNameKey))
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	publishCmd.Flags().String(optionNameKey, "self", "name of the key to publish under")
	c.setAllFlags(publishCmd)

	nameCmd.AddCommand(publishCmd)
	c.root.AddCommand(nameCmd)
}
