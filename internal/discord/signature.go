package discord

import (
	"crypto/ed25519"
	"encoding/hex"
)

// Headers Discord signs every interaction delivery with.
const (
	SignatureHeader = "X-Signature-Ed25519"
	TimestampHeader = "X-Signature-Timestamp"
)

// Verify reports whether signature is a valid Ed25519 signature of
// timestamp+body under publicKey. Both signature and publicKey are hex. It
// fails closed: any missing or malformed input yields false, never a panic.
func Verify(body []byte, timestamp, signature, publicKey string) bool {
	if publicKey == "" || timestamp == "" || signature == "" || body == nil {
		return false
	}

	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	key, err := hex.DecodeString(publicKey)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return false
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(ed25519.PublicKey(key), msg, sig)
}
