package cmd

import (
	"errors"
	"os"

	"fwpolicy/config"
	"fwpolicy/i18n"
	"fwpolicy/rules"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Initialize colored output
var (
	info     = color.New(color.FgBlue).FprintfFunc()
	warn     = color.New(color.FgYellow).FprintfFunc()
	errPrint = color.New(color.FgRed).FprintfFunc()
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "fwpolicy <config-file>",
		Short: "Translate a firewall policy document into installer records",
		Long: `Read a firewall policy document (YAML, JSON or TOML) and print one
pipe-delimited record per resolved rule on standard output:

  ALLOW_PORT|<port>|<proto>|<source>|<description>
  ALLOW_SOURCE|<ip>|<description>
  ALLOW_CONTAINER_PORT|<port>|<proto>|<source>|<description>
  FORWARD_PORT|<external_port>|<internal_ip>|<internal_port>|<proto>|<description>

Records are grouped by category in that order and keep document order
within each category. Rules missing a mandatory field are skipped.
Diagnostics go to standard error.`,
		Args:          exactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runTranslate,
	}
	addFlags(c.Flags())
	c.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return config.NewError(config.Usage, "", err)
	})
	return c
}

func addFlags(fs *pflag.FlagSet) {
	fs.StringP("format", "f", string(config.FormatAuto), "Document format: auto, yaml, json or toml")
	fs.String("lang", "", "Language for diagnostics (defaults to LC_ALL or LANG)")
	fs.BoolP("verbose", "v", false, "Print a per-kind record count to standard error")
}

// exactArgs wraps cobra.ExactArgs so an arity mistake reports as a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return config.NewError(config.Usage, "", err)
		}
		return nil
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	formatName, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")

	format, err := config.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.Load(args[0], format)
	if errors.Is(err, config.ErrEmpty) {
		warn(cmd.ErrOrStderr(), "%s\n", printerFor(cmd).Sprintf(i18n.MsgEmpty))
		return nil
	}
	if err != nil {
		return err
	}

	records := rules.Translate(cfg)
	if err := rules.Write(cmd.OutOrStdout(), records); err != nil {
		return config.NewError(config.Generic, "", err)
	}

	if verbose {
		p := printerFor(cmd)
		counts := rules.Count(records)
		for _, kind := range rules.Kinds {
			info(cmd.ErrOrStderr(), "%s\n", p.Sprintf(i18n.MsgSummary, kind, counts[kind]))
		}
	}
	return nil
}

// colorEnabled reports whether diagnostics written to f should carry color.
// color.NoColor otherwise follows stdout, which carries records.
func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command and reports any failure on standard error.
func Execute() error {
	color.NoColor = !colorEnabled(os.Stderr)
	return execute(rootCmd)
}

func execute(c *cobra.Command) error {
	err := c.Execute()
	if err != nil {
		report(c, err)
	}
	return err
}
