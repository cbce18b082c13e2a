// Command apitest runs smoke checks against a running ethiocal API.
//
//	go run ./cmd/apitest --url http://localhost:8080 -v
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/ethiocal/internal/api"
	"github.com/zapponejosh/ethiocal/internal/calendar"
)

// =============================================================================
// Response Types
// =============================================================================

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// check is one request and what its response must satisfy.
type check struct {
	name   string
	path   string
	status int
	code   string                      // error code for non-2xx checks
	verify func(json.RawMessage) error // data checks for 2xx
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "ethiocal API smoke test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.runGroup("Health", []check{
		{name: "health", path: "/health", status: http.StatusOK, verify: field("status", "healthy")},
	})

	tr.runGroup("Conversions", []check{
		{name: "Yekatit 21, 2012 is a leap day", path: "/api/v1/convert/to-gregorian?year=2012&month=6&day=21",
			status: http.StatusOK, verify: gregorian(2020, 2, 29)},
		{name: "Meskerem 1, 2000", path: "/api/v1/convert/to-ethiopian?year=2007&month=9&day=12",
			status: http.StatusOK, verify: ethiopian(2000, 1, 1)},
		{name: "Eid al-Fitr 1445", path: "/api/v1/convert/hijri-to-gregorian?year=1445&month=10&day=1&target=2024",
			status: http.StatusOK, verify: gregorian(2024, 4, 10)},
		{name: "non-numeric year", path: "/api/v1/convert/to-gregorian?year=abc&month=1&day=1",
			status: http.StatusBadRequest, code: api.CodeInvalidInputType},
		{name: "before 1900", path: "/api/v1/convert/to-ethiopian?year=1899&month=12&day=31",
			status: http.StatusBadRequest, code: api.CodeInvalidGregorianDate},
	})

	tr.runGroup("Bahire Hasab", []check{
		{name: "Nineveh 2016", path: "/api/v1/bahire-hasab/2016",
			status: http.StatusOK, verify: dateField("nineveh_date", 2016, 6, 18)},
		{name: "Fasika 2016", path: "/api/v1/movable/fasika/2016",
			status: http.StatusOK, verify: gregorian(2024, 5, 5)},
		{name: "unknown feast", path: "/api/v1/movable/NOT_A_FEAST/2016",
			status: http.StatusNotFound, code: api.CodeUnknownHoliday},
	})

	tr.runGroup("Holidays", []check{
		{name: "year 2016", path: "/api/v1/holidays/2016", status: http.StatusOK, verify: count(24)},
		{name: "year 2017 has two Moulids", path: "/api/v1/holidays/2017", status: http.StatusOK, verify: count(25)},
		{name: "Miazia 2016", path: "/api/v1/holidays/2016/8", status: http.StatusOK, verify: count(6)},
		{name: "Gena 2016", path: "/api/v1/holiday/gena/2016?lang=en",
			status: http.StatusOK, verify: dateField("ethiopian", 2016, 4, 28)},
		{name: "unknown holiday", path: "/api/v1/holiday/notAHoliday/2016",
			status: http.StatusNotFound, code: api.CodeUnknownHoliday},
		{name: "month 14", path: "/api/v1/holidays/2016/14",
			status: http.StatusBadRequest, code: api.CodeInvalidInputType},
	})

	tr.testExport("/api/v1/holidays/2016/export.ics", "text/calendar", "BEGIN:VCALENDAR")
	tr.testExport("/api/v1/holidays/2016/export.csv", "text/csv", "key,name,ethiopian_date")

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) runGroup(section string, checks []check) {
	tr.printSection(section)

	for _, c := range checks {
		env, status, err := tr.get(c.path)
		if err != nil {
			tr.recordError(c.name, err.Error())
			continue
		}
		if status != c.status {
			tr.recordError(c.name, fmt.Sprintf("status %d, want %d", status, c.status))
			continue
		}

		if c.status >= http.StatusBadRequest {
			if env.Error == nil || env.Error.Code != c.code {
				tr.recordError(c.name, fmt.Sprintf("error %+v, want code %s", env.Error, c.code))
				continue
			}
			tr.recordSuccess(c.name)
			continue
		}

		if c.verify != nil {
			if err := c.verify(env.Data); err != nil {
				tr.recordError(c.name, err.Error())
				continue
			}
		}
		tr.recordSuccess(c.name)
		if tr.verbose {
			fmt.Fprintf(tr.out, "    %s\n", env.Data)
		}
	}
}

func (tr *TestRunner) testExport(path, contentType, prefix string) {
	tr.printSection("Export " + path)

	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		tr.recordError(path, err.Error())
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tr.recordError(path, err.Error())
		return
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), contentType) {
		tr.recordError(path, fmt.Sprintf("content type %q", resp.Header.Get("Content-Type")))
		return
	}
	if !strings.HasPrefix(string(body), prefix) {
		tr.recordError(path, "unexpected body")
		return
	}
	tr.recordSuccess(fmt.Sprintf("%s (%d bytes)", path, len(body)))
}

// =============================================================================
// Verifiers
// =============================================================================

func field(name, want string) func(json.RawMessage) error {
	return func(data json.RawMessage) error {
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		if got := fmt.Sprint(m[name]); got != want {
			return fmt.Errorf("%s = %q, want %q", name, got, want)
		}
		return nil
	}
}

func dateField(name string, year, month, day int) func(json.RawMessage) error {
	return func(data json.RawMessage) error {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		var got calendar.EthiopianDate
		if err := json.Unmarshal(m[name], &got); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		want := calendar.EthiopianDate{Year: year, Month: month, Day: day}
		if got != want {
			return fmt.Errorf("%s = %s, want %s", name, got, want)
		}
		return nil
	}
}

func ethiopian(year, month, day int) func(json.RawMessage) error {
	return dateField("ethiopian", year, month, day)
}

func gregorian(year, month, day int) func(json.RawMessage) error {
	return dateField("gregorian", year, month, day)
}

func count(want int) func(json.RawMessage) error {
	return func(data json.RawMessage) error {
		var resp api.HolidaysResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return err
		}
		if resp.Count != want {
			return fmt.Errorf("count = %d, want %d", resp.Count, want)
		}
		return nil
	}
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) get(path string) (*envelope, int, error) {
	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return &env, resp.StatusCode, nil
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	var (
		baseURL string
		verbose bool
	)

	c := &cobra.Command{
		Use:          "apitest",
		Short:        "Smoke test a running ethiocal API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := NewTestRunner(baseURL, cmd.OutOrStdout(), verbose)
			if _, _, err := runner.get("/health"); err != nil {
				return fmt.Errorf("cannot reach %s, is the API running? %w", baseURL, err)
			}

			runner.Run()
			if runner.errorCount > 0 {
				return fmt.Errorf("%d check(s) failed", runner.errorCount)
			}
			return nil
		},
	}
	c.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "print response data")

	if err := c.Execute(); err != nil {
		os.Exit(1)
	}
}
