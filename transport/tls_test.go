package transport

import "testing"

func TestTLSConfig_Build_Nil(t *testing.T) {
	var cfg *TLSConfig
	got, err := cfg.Build()
	if err != nil || got != nil {
		t.Errorf("expected nil config and nil error, got %v, %v", got, err)
	}
}

func TestTLSConfig_Build_Empty(t *testing.T) {
	cfg := &TLSConfig{}
	got, err := cfg.Build()
	if err != nil || got != nil {
		t.Errorf("expected nil config for empty settings, got %v, %v", got, err)
	}
}

func TestTLSConfig_Build_SkipVerify(t *testing.T) {
	cfg := &TLSConfig{SkipVerify: true}
	got, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.InsecureSkipVerify {
		t.Error("expected InsecureSkipVerify=true")
	}
}

func TestTLSConfig_Build_MissingCAFile(t *testing.T) {
	cfg := &TLSConfig{CAFile: "/does/not/exist.pem"}
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for missing CA file")
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	if err := (&TLSConfig{CertFile: "cert.pem"}).Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
	if err := (&TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
