package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/njchilds90/poly1d"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		port    int
	)
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "Serve poly1d tool calls over HTTP",
		Long: `mcp-server exposes the poly1d polynomial tools to AI agent frameworks.

Without a subcommand it listens for HTTP:
  POST /tool    execute a tool call
  GET  /schema  tool schema for agent registration
  GET  /health  health check`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads -v, -logtostderr and friends from the go flag set.
			return flag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := cfg.validate(); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runHTTP(ctx, cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.Flags().IntVar(&port, "port", defaultConfig().Port, "port to listen on")

	root.AddCommand(newStdioCmd(&cfgFile), newSpecCmd(), newEvalCmd())
	return root
}

func newStdioCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Answer newline-delimited JSON tool calls on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serveStream(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}
}

func newSpecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spec",
		Short: "Print the MCP tool schema",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), poly1d.MCPToolSpec())
		},
	}
}

func newEvalCmd() *cobra.Command {
	var (
		coeffs   []float64
		at       float64
		variable string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a polynomial at one point",
		Example: `  mcp-server eval --coeffs 1,-3,-1,3 --at 3.5
  p(x) = 1x^3 - 3x^2 - 1x + 3
  p(3.5) = 5.625`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(coeffs) == 0 {
				return fmt.Errorf("--coeffs is required")
			}
			p := poly1d.New(coeffs).WithVariable(variable)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "p(%s) = %s\n", p.Variable(), p)
			fmt.Fprintf(out, "p(%g) = %g\n", at, p.Eval(at))
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&coeffs, "coeffs", nil, "coefficients, highest degree first")
	cmd.Flags().Float64Var(&at, "at", 0, "point to evaluate at")
	cmd.Flags().StringVar(&variable, "var", poly1d.DefaultVariable, "display symbol")
	return cmd
}
