package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/puzzlebox/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := metrics.NewRecorder()

	r.Observe("movement", 2*time.Millisecond, nil)
	r.Observe("movement", time.Millisecond, nil)
	r.Observe("viable", time.Millisecond, errors.New("bad input"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Solves("movement", metrics.OutcomeSuccess)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.Solves("movement", metrics.OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Solves("viable", metrics.OutcomeFailure)))

	n, err := testutil.GatherAndCount(r.Gatherer(), "puzzlebox_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.Observe("checksum", time.Second, nil)

	path := filepath.Join(t.TempDir(), "puzzlebox.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `puzzlebox_solves_total{outcome="success",puzzle="checksum"} 1`)
}
