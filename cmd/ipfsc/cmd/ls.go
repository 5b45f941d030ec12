package cmd

import (
	"github.com/spf13/cobra"
)

func (c *command) initLsCmd() {
	cmd := &cobra.Command{
		Use:   "ls <name>",
		Short: "List the links of an object",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmd.Help()
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			r, err := s.Ls(ctx, args[0])
			if err != nil {
				return err
			}
			for _, o := range r.Objects {
				for _, l := range o.Links {
					cmd.Printf("%s\t%d\t%s\n", l.Hash, l.Size, l.Name)
				}
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)
}
