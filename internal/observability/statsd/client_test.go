package statsd

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePrefix(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  galileo.sdk  ": "galileo.sdk",
		"..foo..":         "foo",
		".":               "",
		"":                "",
	}
	for input, want := range tests {
		assert.Equal(t, want, sanitizePrefix(input), "input %q", input)
	}
}

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" backend/request ": "backend_request",
		"backend..duration": "backend.duration",
		"a:b|c":             "a_b_c",
		".":                 "",
	}
	for input, want := range tests {
		assert.Equal(t, want, normalizeMetricName(input), "input %q", input)
	}
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{
		"env":       "prod",
		" service ": " galileo ",
	}
	local := map[string]string{
		"result": " success ",
		"":       "ignored",
		"empty":  "  ",
		"env":    "stage",
	}

	assert.Equal(t, "|#env:stage,result:success,service:galileo", formatTags(global, local))
	assert.Empty(t, formatTags(nil, nil))
}

func TestNewClientDefaultsPrefix(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.False(t, c.Enabled())
	assert.Equal(t, "galileo.backend.request:1|c", c.formatLine("backend.request", "1|c", nil))
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{Enabled: true, Address: "   "})
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	// Writes on a disabled client are dropped silently.
	c.Count("backend.request", 1, nil)
	c.Timing("backend.duration", time.Second, nil)
}

func TestNewClientDialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "statsd dial"))
}

func TestClientWritesLines(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	c, err := NewClient(Config{
		Enabled:    true,
		Address:    pc.LocalAddr().String(),
		Prefix:     "sdk",
		GlobalTags: map[string]string{"env": "test"},
	})
	require.NoError(t, err)
	defer c.Close()
	require.True(t, c.Enabled())

	c.Timing("backend.duration", 1500*time.Microsecond, map[string]string{"operation": "list_jobs"})

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 512)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "sdk.backend.duration:1.5|ms|#env:test,operation:list_jobs", string(buf[:n]))
}

func TestClientClose(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	c := &Client{conn: clientConn}
	require.True(t, c.Enabled())
	require.NoError(t, c.Close())
	assert.False(t, c.Enabled())
	require.NoError(t, c.Close())

	var nilClient *Client
	assert.False(t, nilClient.Enabled())
	require.NoError(t, nilClient.Close())
	nilClient.Count("ignored", 1, nil)
}
