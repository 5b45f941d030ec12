package cmd

import (
	"github.com/spf13/cobra"
)

func (c *command) initKeyCmd() {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Manage daemon keys",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the keys of the daemon keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			r, err := s.KeyList(ctx)
			if err != nil {
				return err
			}
			for _, k := range r.Keys {
				cmd.Printf("%s\t%s\n", k.ID, k.Name)
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(listCmd)

	keyCmd.AddCommand(listCmd)
	c.root.AddCommand(keyCmd)
}
