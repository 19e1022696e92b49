package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorState_TimestampRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)

	var s ConnectorState
	require.NoError(t, s.SetTimestamp(at))

	decoded, err := s.Timestamp()
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.True(t, decoded.Equal(at))
}

func TestConnectorState_EmptyPayloadMeansNeverRan(t *testing.T) {
	var s ConnectorState

	decoded, err := s.Timestamp()
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestConnectorState_MalformedPayload(t *testing.T) {
	s := ConnectorState{Data: "2026-03-14"}

	decoded, err := s.Timestamp()
	assert.Error(t, err)
	assert.Nil(t, decoded)
}
