package feed

import (
	"bsky_bots/shared"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jetstreamTestConfig(host string) *shared.Config {
	return &shared.Config{
		JetstreamHost:        host,
		PingIntervalSec:      60,
		ReconnectIntervalSec: 1,
	}
}

func TestJetstream_ConnectEncodesFilterInUrl(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	js := NewJetstream(jetstreamTestConfig(ts.wsUrl()), testLogger(), WsCallbacks{})
	js.UpdateFilter([]string{"did:plc:aaa"})
	defer js.Close(true)

	waitFor(t, "connection", func() bool { return ts.connCount() == 1 })
	ts.mu.Lock()
	query := ts.queries[0]
	ts.mu.Unlock()
	assert.Equal(t, "wantedCollections=app.bsky.feed.post&wantedDids=did%3Aplc%3Aaaa", query)
}

func TestJetstream_UpdateFilterOnLiveConnectionSendsOneFrame(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	js := NewJetstream(jetstreamTestConfig(ts.wsUrl()), testLogger(), WsCallbacks{})
	js.UpdateFilter([]string{"did:plc:aaa"})
	defer js.Close(true)
	waitFor(t, "connection", func() bool { return js.Connected() })

	js.UpdateFilter([]string{"did:plc:aaa", "did:plc:bbb"})
	waitFor(t, "control frame", func() bool { return ts.frameCount() == 1 })

	// The live connection was narrowed in place: no second dial happened
	assert.Equal(t, 1, ts.connCount())

	ts.mu.Lock()
	raw := ts.received[0]
	ts.mu.Unlock()
	var frame optionsUpdateFrame
	require.NoError(t, json.Unmarshal([]byte(raw), &frame))
	assert.Equal(t, "options_update", frame.Type)
	assert.Equal(t, []string{PostCollection}, frame.Payload.WantedCollections)
	assert.Equal(t, []string{"did:plc:aaa", "did:plc:bbb"}, frame.Payload.WantedDids)
}

func TestJetstream_EmptyFilterTearsDownForGood(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	js := NewJetstream(jetstreamTestConfig(ts.wsUrl()), testLogger(), WsCallbacks{})
	js.UpdateFilter([]string{"did:plc:aaa"})
	waitFor(t, "connection", func() bool { return js.Connected() })

	js.UpdateFilter(nil)
	waitFor(t, "teardown", func() bool { return !js.Connected() })
	// No reconnect attempt follows a permanent teardown; wait out the
	// reconnect interval to be sure
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, 1, ts.connCount())
}

func TestJetstream_UpdateFilterWithNoConnectionDials(t *testing.T) {
	ts := newWsTestServer(t)
	defer ts.close()

	js := NewJetstream(jetstreamTestConfig(ts.wsUrl()), testLogger(), WsCallbacks{})
	assert.False(t, js.Connected())
	js.UpdateFilter([]string{"did:plc:ccc"})
	defer js.Close(true)

	waitFor(t, "connection", func() bool { return js.Connected() })
	assert.Equal(t, 1, ts.connCount())
	assert.Zero(t, ts.frameCount())
}
