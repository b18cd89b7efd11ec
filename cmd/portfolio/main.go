package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gokulananth1/portfolio/internal/config"
	"github.com/gokulananth1/portfolio/internal/contact"
	"github.com/gokulananth1/portfolio/internal/content"
	"github.com/gokulananth1/portfolio/internal/tui"
	"github.com/gokulananth1/portfolio/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile   = config.DefaultPath
	assetsDir    string
	logFile      string
	verbose      bool
	skipLoader   bool
	exportFormat string
	forceInit    bool
	mailName     string
	mailEmail    string
	mailMessage  string

	rootCmd = &cobra.Command{
		Use:   "portfolio",
		Short: "Gokul A's portfolio, in the terminal.",
		Long:  `An interactive single-page portfolio: a counting loader, a scroll-aware navbar with a progress bar, sections that reveal as you scroll and a contact form that hands off to your mail client.`,
		Run:   runPortfolio,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for export output.
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.Flags().BoolVar(&skipLoader, "no-loader", false, "Skip the loading screen")
	rootCmd.Flags().StringVar(&assetsDir, "assets-dir", "", "Directory holding the profile image and resume files (overrides config)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the UI is running")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(exportCmd)

	mailtoCmd.Flags().StringVar(&mailName, "name", "", "Sender name")
	mailtoCmd.Flags().StringVar(&mailEmail, "email", "", "Sender email")
	mailtoCmd.Flags().StringVar(&mailMessage, "message", "", "Message body")
	rootCmd.AddCommand(mailtoCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

func loadConfig() config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}
	return cfg
}

func runPortfolio(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if assetsDir != "" {
		cfg.AssetsDir = assetsDir
	}
	portfolio := content.Default()
	if err := portfolio.Validate(); err != nil {
		logrus.Fatalf("Invalid content: %v", err)
	}

	baseDir := "."
	if exe, err := os.Executable(); err == nil {
		baseDir = filepath.Dir(exe)
	}
	opts := tui.Options{
		Config:     cfg,
		Content:    portfolio,
		SkipLoader: skipLoader,
		BaseDir:    baseDir,
	}
	if err := tui.Run(cmd.Context(), opts, logFile); err != nil {
		logrus.Fatalf("TUI failed: %v", err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the portfolio content as JSON or YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		portfolio := content.Default()
		out := cmd.OutOrStdout()
		switch exportFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(portfolio); err != nil {
				logrus.Fatal(err)
			}
		case "yaml", "yml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(portfolio); err != nil {
				logrus.Fatal(err)
			}
			if err := enc.Close(); err != nil {
				logrus.Fatal(err)
			}
		default:
			logrus.Fatalf("Unknown format %q. Expected json or yaml.", exportFormat)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var mailtoCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Print the mailto link the contact form would hand off",
	Long:  "Build the same mailto: link the contact form opens on submit, without starting the UI.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fields := contact.Fields{Name: mailName, Email: mailEmail, Message: mailMessage}
		if err := validate.Struct(fields); err != nil {
			logrus.Fatalf("All of --name, --email and --message are required: %v", err)
		}
		cfg := loadConfig()
		fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoLink(cfg.Contact.Recipient, fields))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if !forceInit {
			exists, err := config.Exists(configFile)
			if err != nil {
				logrus.Fatal(err)
			}
			if exists {
				logrus.Fatalf("Config file %s already exists; use --force to overwrite", configFile)
			}
		}
		if err := config.Save(configFile, config.Default()); err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", configFile)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(cfg); err != nil {
			logrus.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			logrus.Fatal(err)
		}
	},
}
