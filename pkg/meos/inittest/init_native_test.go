//go:build cgo && meos

package inittest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilitydb/meos-go/pkg/meos"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

func TestRejectedTimezoneCanBeRetried(t *testing.T) {
	err := meos.Initialize(meos.Config{Timezone: "Not/AZone", Logger: logging.Discard()})
	var ce *meos.NativeCallError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Initialize", ce.Op)
	assert.Equal(t, meos.Uninitialized, meos.CurrentState())

	_, err = meos.ParseTFloat("1.5@2000-01-01")
	assert.ErrorIs(t, err, meos.ErrNotInitialized)

	require.NoError(t, meos.Initialize(meos.Config{Timezone: "UTC", Logger: logging.Discard()}))
	defer meos.Finalize()
	assert.Equal(t, meos.Initialized, meos.CurrentState())

	tf, err := meos.ParseTFloat("1.5@2000-01-01")
	require.NoError(t, err)
	defer tf.Free()
	v, err := tf.StartValue()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	ts, err := tf.StartTimestamp()
	require.NoError(t, err)
	assert.Equal(t, 0, ts.UTC().Hour())
}
