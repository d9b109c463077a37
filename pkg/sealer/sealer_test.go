package sealer

import (
	"errors"
	"reflect"
	"testing"
)

const testKey = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

func TestSealOpen(t *testing.T) {
	s, err := New(testKey)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := s.Seal("booking", "65f1a2b3c4d5e6f7a8b9c0d1")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	parts, err := s.Open(token)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !reflect.DeepEqual(parts, []string{"booking", "65f1a2b3c4d5e6f7a8b9c0d1"}) {
		t.Errorf("Open() = %v", parts)
	}
}

func TestOpen_Tampered(t *testing.T) {
	s, _ := New(testKey)
	token, _ := s.Seal("booking", "abc")

	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	for _, bad := range []string{string(tampered), "", "!!!", "YQ"} {
		if _, err := s.Open(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Open(%q) error = %v, want ErrInvalidToken", bad, err)
		}
	}
}

func TestNew_BadKey(t *testing.T) {
	if _, err := New("c2hvcnQ="); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := New("not base64!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
