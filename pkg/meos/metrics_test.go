package meos

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))

	nativeErrors.WithLabelValues("temporal_in")

	n, err := testutil.GatherAndCount(reg,
		"meos_handles_adopted_total",
		"meos_handles_released_total",
		"meos_handles_transferred_total",
		"meos_handles_live",
		"meos_lifecycle_state",
	)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	require.Error(t, RegisterMetrics(reg), "second registration must conflict")
}

func TestLifecycleStateGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))

	want := "# HELP meos_lifecycle_state 0 uninitialized, 1 initialized, 2 finalized.\n" +
		"# TYPE meos_lifecycle_state gauge\n" +
		"meos_lifecycle_state " + stateValue() + "\n"
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "meos_lifecycle_state"))
}

func stateValue() string {
	switch CurrentState() {
	case Initialized:
		return "1"
	case Finalized:
		return "2"
	}
	return "0"
}
