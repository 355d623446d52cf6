package discord

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey struct {
	pub  string
	priv ed25519.PrivateKey
}

func newTestKey(t *testing.T) testKey {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return testKey{pub: hex.EncodeToString(pub), priv: priv}
}

func (k testKey) sign(timestamp string, body []byte) string {
	msg := append([]byte(timestamp), body...)
	return hex.EncodeToString(ed25519.Sign(k.priv, msg))
}

func TestVerify(t *testing.T) {
	key := newTestKey(t)
	body := []byte(`{"type":1}`)
	ts := "1700000000"
	sig := key.sign(ts, body)

	assert.True(t, Verify(body, ts, sig, key.pub))
	assert.True(t, Verify(body, ts, sig, strings.ToUpper(key.pub)), "hex decoding is case-insensitive")

	other := newTestKey(t)
	assert.False(t, Verify(body, ts, sig, other.pub), "wrong key")
	assert.False(t, Verify([]byte(`{"type":2}`), ts, sig, key.pub), "tampered body")
	assert.False(t, Verify(body, "1700000001", sig, key.pub), "tampered timestamp")
}

func TestVerifyFailsClosed(t *testing.T) {
	key := newTestKey(t)
	body := []byte(`{"type":1}`)
	ts := "1700000000"
	sig := key.sign(ts, body)

	tests := []struct {
		name      string
		body      []byte
		timestamp string
		signature string
		publicKey string
	}{
		{"missing signature", body, ts, "", key.pub},
		{"missing timestamp", body, "", sig, key.pub},
		{"missing key", body, ts, sig, ""},
		{"nil body", nil, ts, sig, key.pub},
		{"signature not hex", body, ts, "zz" + sig[2:], key.pub},
		{"signature too short", body, ts, sig[:64], key.pub},
		{"signature too long", body, ts, sig + "00", key.pub},
		{"key not hex", body, ts, sig, "not-a-key"},
		{"key too short", body, ts, sig, key.pub[:32]},
		{"key too long", body, ts, sig, key.pub + "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Verify(tt.body, tt.timestamp, tt.signature, tt.publicKey))
			})
		})
	}
}
