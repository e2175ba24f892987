package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/timelang/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server over stdio",
		Long: `Start a Language Server Protocol server on stdin and stdout.

Editors get diagnostics for every invalid expression line, keyword
completion, hover with the canonical form and syntax tree, and
document formatting. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			srv := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Config{
				Engine:  cmdCtx.Engine,
				Version: version,
				Logger:  cmdCtx.Logger,
			})
			return srv.Run(cmd.Context())
		},
	}
}
