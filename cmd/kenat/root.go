package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ethiocal/internal/calendar"
	"github.com/zapponejosh/ethiocal/internal/locale"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
	formatICS   = "ics"
)

// options are the flags shared by every subcommand.
type options struct {
	lang   string
	format string
	now    func() time.Time
}

func (o *options) language() locale.Lang {
	lang, _ := locale.ParseLang(o.lang)
	return lang
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	c := &cobra.Command{
		Use:           "kenat",
		Short:         "Ethiopian calendar conversions, Bahire Hasab and holidays",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	c.PersistentFlags().StringVarP(&opts.lang, "lang", "l", string(locale.DefaultLang),
		"output language (am|en)")
	c.PersistentFlags().StringVarP(&opts.format, "format", "f", formatTable,
		"output format (table|json, plus csv|ics for holidays)")

	c.AddCommand(
		newToGregorianCmd(opts),
		newToEthiopianCmd(opts),
		newHijriCmd(opts),
		newBahireHasabCmd(opts),
		newHolidaysCmd(opts),
	)
	return c
}

// intArgs parses positional arguments for funcName; names label them in errors.
func intArgs(funcName string, args []string, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		v, err := calendar.ParseNumeric(funcName, name, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// checkFormat rejects formats the command cannot render.
func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want %s)", format, strings.Join(allowed, "|"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
