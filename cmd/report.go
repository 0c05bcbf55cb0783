package cmd

import (
	"errors"

	"fwpolicy/config"
	"fwpolicy/i18n"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

func printerFor(cmd *cobra.Command) *message.Printer {
	lang, _ := cmd.Flags().GetString("lang")
	return i18n.NewCLIPrinter(lang)
}

// report prints err once, prefixed according to its kind.
func report(cmd *cobra.Command, err error) {
	p := printerFor(cmd)
	w := cmd.ErrOrStderr()

	var cerr *config.Error
	if !errors.As(err, &cerr) {
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgGeneric, err))
		return
	}

	switch cerr.Kind {
	case config.Usage:
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgGeneric, cerr.Err))
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgUsage, cmd.Name()))
	case config.NotFound:
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgNotFound, cerr.Path))
	case config.Parse:
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgParse, cerr.Err))
	default:
		errPrint(w, "%s\n", p.Sprintf(i18n.MsgGeneric, cerr))
	}
}
