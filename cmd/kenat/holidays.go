package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ethiocal/internal/calendar"
	"github.com/zapponejosh/ethiocal/internal/export"
	"github.com/zapponejosh/ethiocal/internal/locale"
)

func newBahireHasabCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "bahire-hasab <year>",
		Short:   "Show the Bahire Hasab computation and movable feasts of a year",
		Example: "kenat bahire-hasab 2016 --lang en",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format, formatTable, formatJSON); err != nil {
				return err
			}
			v, err := intArgs("GetBahireHasab", args, "year")
			if err != nil {
				return err
			}
			lang := opts.language()
			bh, err := calendar.GetBahireHasab(v[0], lang)
			if err != nil {
				return err
			}
			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), bh)
			}

			cat := locale.Default()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Amete Alem\t%d\n", bh.AmeteAlem)
			fmt.Fprintf(tw, "Evangelist\t%s\n", bh.Evangelist.LocalName)
			fmt.Fprintf(tw, "New Year\t%s\n", cat.WeekdayName(lang, bh.NewYear.Weekday))
			fmt.Fprintf(tw, "Medeb\t%d\n", bh.Medeb)
			fmt.Fprintf(tw, "Wenber\t%d\n", bh.Wenber)
			fmt.Fprintf(tw, "Abektie\t%d\n", bh.Abektie)
			fmt.Fprintf(tw, "Metqi\t%d\n", bh.Metqi)
			fmt.Fprintf(tw, "Beale Metqi\t%s (%s)\n", bh.BealeMetqiDate, bh.BealeMetqiWeekday)
			fmt.Fprintf(tw, "Nineveh\t%s\n", bh.NinevehDate)
			fmt.Fprintln(tw)
			if err := tw.Flush(); err != nil {
				return err
			}
			return printHolidayTable(cmd, bh.MovableFeasts)
		},
	}
}

func newHolidaysCmd(opts *options) *cobra.Command {
	var month, tags string

	c := &cobra.Command{
		Use:     "holidays <year>",
		Short:   "List the holidays of an Ethiopian year or month",
		Example: "kenat holidays 2016 --month 8 --tags public --format csv",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format, formatTable, formatJSON, formatCSV, formatICS); err != nil {
				return err
			}
			v, err := intArgs("GetHolidaysForYear", args, "year")
			if err != nil {
				return err
			}
			year := v[0]
			filter, err := parseTags(tags)
			if err != nil {
				return err
			}

			var holidays []calendar.Holiday
			if month != "" {
				m, err := calendar.ParseNumeric("GetHolidaysInMonth", "month", month)
				if err != nil {
					return err
				}
				holidays, err = calendar.GetHolidaysInMonth(year, m, opts.language(), filter...)
				if err != nil {
					return err
				}
			} else {
				holidays, err = calendar.GetHolidaysForYear(year, opts.language(), filter...)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch opts.format {
			case formatJSON:
				return writeJSON(out, holidays)
			case formatCSV:
				s, err := export.CSV(holidays)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, s)
				return err
			case formatICS:
				b, err := export.ICS(year, holidays, opts.now())
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			default:
				return printHolidayTable(cmd, holidays)
			}
		},
	}

	c.Flags().StringVarP(&month, "month", "m", "", "Ethiopian month 1-13 (default whole year)")
	c.Flags().StringVarP(&tags, "tags", "t", "", "comma separated tag filter ("+joinTags(calendar.ValidTags())+")")
	return c
}

// printHolidayTable writes one aligned row per holiday.
func printHolidayTable(cmd *cobra.Command, holidays []calendar.Holiday) error {
	rows, err := export.Rows(holidays)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ETHIOPIAN\tGREGORIAN\tKEY\tNAME")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Ethiopian, r.Gregorian, r.Key, r.Name)
	}
	return tw.Flush()
}

func parseTags(raw string) ([]calendar.Tag, error) {
	var tags []calendar.Tag
	for _, part := range strings.Split(raw, ",") {
		tag := calendar.Tag(strings.ToLower(strings.TrimSpace(part)))
		if tag == "" {
			continue
		}
		if !tag.IsValid() {
			return nil, fmt.Errorf("unknown tag %q", part)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func joinTags(tags []calendar.Tag) string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = string(t)
	}
	return strings.Join(s, ",")
}
