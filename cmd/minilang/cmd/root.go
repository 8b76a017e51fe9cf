package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"minilang/internal/minilang"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "minilang [statement]",
	Short: "Lexical, syntax, and semantic analysis for single statements",
	Long: `minilang analyzes one statement at a time and reports its tokens, the
derivation tree the grammar produces for it, the reconstructed BNF
production sequence, and any semantic errors.

Supported statements:
  int x = 5            variable declarations (int, double, string, bool)
  x + y * 2            arithmetic expressions with +, * and parentheses
  if(x > 9)            conditional headers
  while(i < 7)         loop headers

Run with a statement to analyze it once, or without arguments for an
interactive prompt.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			result := minilang.Analyze(args[0])
			renderResult(cmd.OutOrStdout(), result)
			if result.Status != minilang.StatusSuccess {
				os.Exit(65)
			}
			return nil
		}
		return runPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults)")
}
