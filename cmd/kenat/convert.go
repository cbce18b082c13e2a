package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ethiocal/internal/calendar"
	"github.com/zapponejosh/ethiocal/internal/locale"
)

type conversion struct {
	Ethiopian calendar.EthiopianDate `json:"ethiopian"`
	Gregorian calendar.GregorianDate `json:"gregorian"`
	Weekday   string                 `json:"weekday"`
}

func newToGregorianCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "to-gregorian <year> <month> <day>",
		Short:   "Convert an Ethiopian date to Gregorian",
		Example: "kenat to-gregorian 2016 8 27",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format, formatTable, formatJSON); err != nil {
				return err
			}
			v, err := intArgs("EthiopianToGregorian", args, "year", "month", "day")
			if err != nil {
				return err
			}
			g, err := calendar.EthiopianToGregorian(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			eth := calendar.EthiopianDate{Year: v[0], Month: v[1], Day: v[2]}
			return printConversion(cmd, opts, eth, g, g.String())
		},
	}
}

func newToEthiopianCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "to-ethiopian <year> <month> <day>",
		Short:   "Convert a Gregorian date (1900-2100) to Ethiopian",
		Example: "kenat to-ethiopian 2024 5 5",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format, formatTable, formatJSON); err != nil {
				return err
			}
			v, err := intArgs("GregorianToEthiopian", args, "year", "month", "day")
			if err != nil {
				return err
			}
			eth, err := calendar.GregorianToEthiopian(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			g := calendar.GregorianDate{Year: v[0], Month: v[1], Day: v[2]}
			text := fmt.Sprintf("%s %d, %d", locale.Default().MonthName(opts.language(), eth.Month), eth.Day, eth.Year)
			return printConversion(cmd, opts, eth, g, text)
		},
	}
}

func printConversion(cmd *cobra.Command, opts *options, eth calendar.EthiopianDate, g calendar.GregorianDate, text string) error {
	weekday := locale.Default().WeekdayName(opts.language(), int(g.Time().Weekday()))
	if opts.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), conversion{Ethiopian: eth, Gregorian: g, Weekday: weekday})
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", text, weekday)
	return err
}

func newHijriCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "hijri <YYYY-MM-DD>",
		Short:   "Convert a Gregorian date to the tabular Hijri calendar",
		Example: "kenat hijri 2024-04-10",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format, formatTable, formatJSON); err != nil {
				return err
			}
			g, err := calendar.ParseGregorianDate(args[0])
			if err != nil {
				return err
			}
			h := calendar.GregorianToHijri(g)
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"gregorian": g, "hijri": h})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d-%02d AH\n", h.Year, h.Month, h.Day)
			return err
		},
	}
}
