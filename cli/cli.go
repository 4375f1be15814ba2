package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ranfysvalle02/secure-llm-output/banner"
	"github.com/ranfysvalle02/secure-llm-output/config"
	"github.com/ranfysvalle02/secure-llm-output/logging"
	"github.com/ranfysvalle02/secure-llm-output/probe"
	"github.com/ranfysvalle02/secure-llm-output/server"
)

var (
	// Server options
	configFile string
	listenAddr string
	debugMode  bool

	// Probe options
	browserMode bool
	timeout     int
	browserWait int
	outputFile  string
	silent      bool
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "secure-llm-output",
		Short: "Insecure output handling demo",
		Long: banner.GetBanner() + `
A deliberately vulnerable web page that reflects submitted prompts into its
output region without escaping, plus a probe that demonstrates the flaw
against a running instance.
`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newProbeCmd())
	return rootCmd.Execute()
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the vulnerable demo server",
		Example: `  # Defaults (127.0.0.1:5000)
  secure-llm-output serve

  # Custom address with debug logging
  secure-llm-output serve --listen 127.0.0.1:8080 -d`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugMode {
				logging.InitLogger(logrus.DebugLevel)
			} else {
				logging.InitLogger(logrus.InfoLevel)
			}

			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddress = listenAddr
			}
			if cfg.Debug {
				logging.InitLogger(logrus.DebugLevel)
			}

			server.Run(cfg)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to the config file")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides the config file)")
	cmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
	return cmd
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [target_url]",
		Short: "Check a running demo for reflected, unescaped output",
		Args:  cobra.ExactArgs(1),
		Example: `  # Reflection check only
  secure-llm-output probe http://127.0.0.1:5000/

  # Confirm execution in a headless browser
  secure-llm-output probe http://127.0.0.1:5000/ --browser

  # Write the result to a JSON file
  secure-llm-output probe http://127.0.0.1:5000/ -o result.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !silent {
				fmt.Println(banner.GetBanner())
			}

			p := probe.New(probe.Options{
				Timeout:     time.Duration(timeout) * time.Second,
				Browser:     browserMode,
				BrowserWait: time.Duration(browserWait) * time.Second,
			})

			result, err := p.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !silent {
				probe.PrintReport(result)
			}
			if outputFile != "" {
				if err := probe.SaveResult(result, outputFile); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&browserMode, "browser", false, "Verify execution in a headless browser")
	cmd.Flags().IntVar(&timeout, "timeout", 30, "HTTP timeout in seconds")
	cmd.Flags().IntVar(&browserWait, "browser-wait", 3, "Seconds to wait for the injected script to fire")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the JSON result to a file")
	cmd.Flags().BoolVar(&silent, "silent", false, "Suppress banner and report output")
	return cmd
}
