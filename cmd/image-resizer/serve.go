package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/server"
)

func init() { rootCmd.AddCommand(serveCmd) }

var serveCmd = &cobra.Command{
	Use:   `serve`,
	Short: `run the MCP server on stdin/stdout`,
	Long: `Run the MCP server. Requests are read from stdin one JSON-RPC message per line;
responses are written to stdout. Configure it in an MCP client such as Claude Desktop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, opts, err := setup()
		if err != nil {
			return err
		}

		server.Version = Version
		logger.Debug("starting server", "version", Version, "built", BuildTime, "commit", GitCommit)

		srv := server.New(server.Config{Logger: logger, Options: opts})
		return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
