package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gauss-project/ipfsclient/pkg/ipfs"
)

func (c *command) initObjectCmd() {
	objectCmd := &cobra.Command{
		Use:   "object",
		Short: "Manipulate dag objects",
	}
	patchCmd := &cobra.Command{
		Use:   "patch",
		Short: "Create a new object from an existing one",
	}

	addLinkCmd := &cobra.Command{
		Use:   "add-link <root> <name> <ref>",
		Short: "Add a link to an object",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return cmd.Help()
			}
			modify, err := ipfs.ParseContentHash(args[0])
			if err != nil {
				return err
			}
			add, err := ipfs.ParseContentHash(args[2])
			if err != nil {
				return err
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			r, err := s.ObjectPatchAddLink(ctx, modify, args[1], add, c.config.GetBool(optionNameCreate))
			if err != nil {
				return err
			}
			cmd.Println(r.Hash)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	addLinkCmd.Flags().BoolP(optionNameCreate, "p", false, "create intermediate directories on the way")
	c.setAllFlags(addLinkCmd)

	patchCmd.AddCommand(addLinkCmd)
	objectCmd.AddCommand(patchCmd)
	c.root.AddCommand(objectCmd)
}
