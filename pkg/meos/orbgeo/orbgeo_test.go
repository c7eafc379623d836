package orbgeo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromOrbNil(t *testing.T) {
	_, err := FromOrb(nil, 4326)
	require.ErrorIs(t, err, ErrNilGeometry)
}
