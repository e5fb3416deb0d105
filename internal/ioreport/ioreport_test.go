package ioreport_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gnames/rolecheck/internal/ioreport"
	"github.com/gnames/rolecheck/pkg/conformance"
	"github.com/gnames/rolecheck/pkg/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *ioreport.Report {
	r := role.New("Shop::Gateway",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "amount"},
			{Kind: role.Optional, Name: "currency"},
		}},
		role.Method{Name: "Refund"},
	)
	subj := role.New("Stripe",
		role.Method{Name: "Charge", Signature: role.Signature{
			{Kind: role.Required, Name: "amount"},
			{Kind: role.Optional, Name: "currency"},
		}},
	)

	rep := ioreport.New(r.Name, subj.Name)
	for _, c := range conformance.Generate(r) {
		rep.Add(c, c.Check(nil, subj))
	}
	rep.Finish()
	return rep
}

func TestReportCounts(t *testing.T) {
	rep := sampleReport()
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 1, rep.Failed)
	require.Len(t, rep.Cases, 2)
	assert.NotEmpty(t, rep.RunID)
	assert.NotEmpty(t, rep.Duration)

	assert.Equal(t, "pass", rep.Cases[0].Status)
	assert.Equal(t, "fail", rep.Cases[1].Status)
	assert.Equal(t, "missing", rep.Cases[1].Reason)
	assert.Empty(t, rep.Cases[1].Got)
}

func TestReportStableIDs(t *testing.T) {
	r1 := sampleReport()
	r2 := sampleReport()
	assert.NotEqual(t, r1.RunID, r2.RunID)
	assert.Equal(t, r1.Cases[0].ID, r2.Cases[0].ID)
	assert.NotEqual(t, r1.Cases[0].ID, r1.Cases[1].ID)
}

func TestReportWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Write(&buf, "text"))

	out := buf.String()
	assert.Contains(t, out, "Shop::Gateway interface, subject Stripe")
	assert.Contains(t, out, "ok   defines #Charge(amount, currency = nil)")
	assert.Contains(t, out, "FAIL defines #Refund()")
	assert.Contains(t, out,
		"Incomplete implementation of Shop::Gateway. #Refund() is not defined.")
	assert.Contains(t, out, "2 cases, 1 passed, 1 failed")
}

func TestReportWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().Write(&buf, "json"))

	var res map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "Shop::Gateway", res["role"])
	assert.Equal(t, "Stripe", res["subject"])
	assert.EqualValues(t, 1, res["failed"])
	assert.Len(t, res["cases"], 2)
}
