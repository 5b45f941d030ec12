package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func (c *command) initAddCmd() {
	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Store a file on the local daemon",
		Long: `Store a file on the local daemon and print its content identifier.
With no file argument the payload is read from standard input; the upload
is streamed either way.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return cmd.Help()
			}

			s, _, err := c.newService(cmd)
			if err != nil {
				return err
			}

			payload := io.Reader(cmd.InOrStdin())
			length := int64(-1)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				fi, err := f.Stat()
				if err != nil {
					return err
				}
				payload, length = f, fi.Size()
			}

			ctx, cancel := c.withTimeout(cmd.Context())
			defer cancel()

			r, err := s.Add(ctx, payload, length)
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

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)
}
