package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Digest selects the algorithm used to condense the canonical serialization
// into the fingerprint string.
type Digest string

const (
	// DigestSHA256 produces a 64-character lowercase hex SHA-256 digest.
	DigestSHA256 Digest = "sha256"
	// DigestSimple produces the legacy non-cryptographic hash. Its only
	// virtue is bit-for-bit reproducibility across implementations, which
	// matters when matching identifiers minted by older clients.
	DigestSimple Digest = "simple"
)

// Canonicalize serializes components into a stable string representation:
// JSON with keys sorted at every level. Two maps with equal logical content
// always canonicalize identically regardless of insertion order, which is
// what keeps the fingerprint immune to deferred-collector completion jitter.
//
// Map keys are sorted by encoding/json itself; slices keep their order. A
// value that cannot be marshaled (a collector bug) degrades to a sorted
// key=value rendering so that hashing still succeeds deterministically.
func Canonicalize(components Components) string {
	b, err := json.Marshal(map[string]any(components))
	if err != nil {
		return flatSerialize(components)
	}
	return string(b)
}

func flatSerialize(components Components) string {
	keys := make([]string, 0, len(components))
	for k := range components {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s=%v;", k, components[k])
	}
	return sb.String()
}

// hashString digests s with the selected algorithm.
func hashString(s string, d Digest) string {
	if d == DigestSimple {
		return SimpleHash(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SimpleHash computes the deterministic fallback hash of s: a multiply-by-31
// accumulator over the string's UTF-16 code units with 32-bit signed
// wraparound, rendered as the hex of the absolute value. The overflow
// behavior is part of the contract: equal inputs hash identically on every
// platform, including clients that minted identifiers with this algorithm.
func SimpleHash(s string) string {
	var h int32
	for _, cu := range utf16.Encode([]rune(s)) {
		h = h<<5 - h + int32(cu)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}
