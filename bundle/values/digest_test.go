package values

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewDigest(t *testing.T) {
	sha1Hex := strings.Repeat("ab", 20)
	sha256Hex := strings.Repeat("cd", 32)

	tests := []struct {
		name    string
		algo    string
		val     string
		wantErr bool
	}{
		{"ValidSHA1", "sha1", sha1Hex, false},
		{"ValidSHA256", "sha256", sha256Hex, false},
		{"InvalidAlgo", "md5", sha1Hex, true},
		{"NotHex", "sha1", strings.Repeat("zz", 20), true},
		{"WrongLength", "sha1", "abcd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDigest(tt.algo, tt.val)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewDigest() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if got.Algorithm() != tt.algo {
					t.Errorf("Algorithm() = %v, want %v", got.Algorithm(), tt.algo)
				}
				if got.Hex() != tt.val {
					t.Errorf("Hex() = %v, want %v", got.Hex(), tt.val)
				}
			}
		})
	}
}

func TestComputeDigest(t *testing.T) {
	// Known SHA-1 of "hello"
	const helloSHA1 = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"

	d := ComputeDigest([]byte("hello"))
	if d.Algorithm() != "sha1" {
		t.Errorf("Algorithm() = %v, want sha1", d.Algorithm())
	}
	if d.Hex() != helloSHA1 {
		t.Errorf("Hex() = %v, want %v", d.Hex(), helloSHA1)
	}

	// Stable across calls
	if !d.Equals(ComputeDigest([]byte("hello"))) {
		t.Error("digest of identical content must be identical")
	}

	// Different content, different digest
	if d.Equals(ComputeDigest([]byte("hello!"))) {
		t.Error("digest of different content must differ")
	}
}

func TestComputeDigestReader(t *testing.T) {
	content := []byte("the quick brown fox")

	fromReader, err := ComputeDigestReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("ComputeDigestReader failed: %v", err)
	}

	if !fromReader.Equals(ComputeDigest(content)) {
		t.Error("reader and byte digests must agree")
	}
}

func TestDigestVerify(t *testing.T) {
	content := []byte("pass content")
	d := ComputeDigest(content)

	if err := d.Verify(content); err != nil {
		t.Errorf("Verify failed for matching content: %v", err)
	}
	if err := d.Verify([]byte("tampered")); err == nil {
		t.Error("Verify should fail for tampered content")
	}
}

func TestParseDigest(t *testing.T) {
	sha1Hex := strings.Repeat("ab", 20)

	d, err := ParseDigest("sha1:" + sha1Hex)
	if err != nil {
		t.Fatalf("ParseDigest failed: %v", err)
	}
	if d.String() != "sha1:"+sha1Hex {
		t.Errorf("String() = %v", d.String())
	}

	if _, err := ParseDigest("nocolon"); err == nil {
		t.Error("ParseDigest should reject input without separator")
	}
}
