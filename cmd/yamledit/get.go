package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/yamledit/internal/encode"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at path, rendered in flow style",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := loadEditor(args[0])
			if err != nil {
				return err
			}

			n, err := ed.ParseAt(parsePath(args[1]))
			if err != nil {
				return logFacadeError(ed, "get", err)
			}

			rendered := encode.Flow(n)
			if colorOut {
				rendered = "\x1b[36m" + rendered + "\x1b[0m"
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return err
		},
	}
}
