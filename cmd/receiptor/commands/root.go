package commands

import (
	"github.com/spf13/cobra"
)

var port string

func Execute() error {
	root := &cobra.Command{
		Use:   "receiptor",
		Short: "Receipt scoring HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&port, "port", "", "listen port (overrides PORT env)")

	root.AddCommand(serveCmd())

	return root.Execute()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}
