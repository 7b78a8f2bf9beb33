package reuse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"macreuse/mac"
	"macreuse/reuse"
)

func TestWriteReport_ReferenceShape(t *testing.T) {
	s, err := mustEvaluator(t).Evaluate(mac.Activations{1, 1, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))
	out := buf.String()

	require.Contains(t, out, "--- Running experiment: N=3 ---")
	require.Contains(t, out, "Total weight patterns = 8")
	require.Contains(t, out, "Unique output values = 4")
	require.Contains(t, out, "Reuse ratio = 2.00x")
	require.Contains(t, out, "Top 4 most reused output values:")
	require.Contains(t, out, "Value =  -1.000    reused by 3 weight patterns")
	require.Contains(t, out, "Value =   3.000    reused by 1 weight patterns")
}

func TestWriteReport_TopKTruncates(t *testing.T) {
	ev, err := reuse.New(reuse.Options{TopK: 2})
	require.NoError(t, err)
	s, err := ev.Evaluate(mac.Activations{1, 1, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))

	require.Contains(t, buf.String(), "Top 2 most reused output values:")
	require.Equal(t, 2, strings.Count(buf.String(), "reused by"))
}

func TestWriteReport_CommaGrouping(t *testing.T) {
	// n=12 all-ones: 4096 patterns over 13 values.
	s, err := mustEvaluator(t).Evaluate(mac.Activations{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteReport(&buf))
	require.Contains(t, buf.String(), "Total weight patterns = 4,096")
}
