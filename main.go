package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mathlex/internal/cmd"
)

func main() {
	opts := &cmd.Options{}
	exitCode := 0

	root := &cobra.Command{
		Use:   "mathlex [expression]",
		Short: "Tokenize a math expression",
		Long: "mathlex scans a math expression and prints its token stream.\n" +
			"Unrecognized lexemes are reported as warnings; a malformed\n" +
			"numeric literal aborts tokenization with an error.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			expression, err := readExpression(c, args)
			if err != nil {
				return err
			}
			exitCode = cmd.Run(expression, opts, c.OutOrStdout(), c.ErrOrStderr())
			return nil
		},
	}

	root.Flags().BoolVar(&opts.Debug, "debug", false, "Enable debug output")
	root.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// readExpression takes the expression from the positional argument or,
// when absent, from stdin.
func readExpression(c *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(c.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading expression from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
