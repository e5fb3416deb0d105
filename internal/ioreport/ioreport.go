// Package ioreport collects conformance results of a CLI run and writes
// them as text or JSON.
package ioreport

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/google/uuid"
)

// Report is the outcome of checking one subject against one role.
type Report struct {
	RunID    string  `json:"runId"`
	Role     string  `json:"role"`
	Subject  string  `json:"subject"`
	Cases    []Entry `json:"cases"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Duration string  `json:"duration"`
	started  time.Time
}

// Entry is one checked case.
type Entry struct {
	// ID is stable across runs for the same role and method.
	ID      string `json:"id"`
	Label   string `json:"label"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Want    string `json:"expected"`
	Got     string `json:"actual,omitempty"`
}

// New starts a report.
func New(role, subject string) *Report {
	return &Report{
		RunID:   uuid.New().String(),
		Role:    role,
		Subject: subject,
		Cases:   []Entry{},
		started: time.Now(),
	}
}

// Add records the result of a case.
func (r *Report) Add(c conformance.Case, res conformance.Result) {
	e := Entry{
		ID:      gnuuid.New(c.Role + "#" + c.Method.Name).String(),
		Label:   c.Label,
		Status:  res.Status.String(),
		Reason:  res.Reason.String(),
		Message: res.Message,
		Want:    res.Want.String(),
	}
	if res.Reason != conformance.Missing {
		e.Got = res.Got.String()
	}
	if res.Passed() {
		r.Passed++
	} else {
		r.Failed++
	}
	r.Cases = append(r.Cases, e)
}

// Finish stores the duration of the run.
func (r *Report) Finish() {
	r.Duration = gnfmt.TimeString(time.Since(r.started).Seconds())
}

// Write outputs the report in the given format, 'text' or 'json'.
func (r *Report) Write(w io.Writer, format string) error {
	var err error
	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		var data []byte
		if data, err = enc.Encode(r); err == nil {
			_, err = fmt.Fprintln(w, string(data))
		}
	default:
		_, err = io.WriteString(w, r.text())
	}
	if err != nil {
		return ReportWriteError(err)
	}
	return nil
}

func (r *Report) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s interface, subject %s\n", r.Role, r.Subject)
	for _, v := range r.Cases {
		mark := "ok  "
		if v.Status != conformance.Pass.String() {
			mark = "FAIL"
		}
		fmt.Fprintf(&sb, "  %s %s\n", mark, v.Label)
		if v.Message != "" {
			fmt.Fprintf(&sb, "       %s\n", v.Message)
		}
	}
	fmt.Fprintf(&sb, "\n%s cases, %s passed, %s failed (%s)\n",
		humanize.Comma(int64(len(r.Cases))),
		humanize.Comma(int64(r.Passed)),
		humanize.Comma(int64(r.Failed)),
		r.Duration,
	)
	return sb.String()
}
