package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DemoConfig is the optional YAML configuration file for srd-demo. Every
// field has a sane zero-value default so the demo runs config-free.
type DemoConfig struct {
	// KeySize selects the DH group: 256, 512 or 1024 bytes. Zero means
	// "use the client default" (256).
	KeySize uint16 `yaml:"key_size"`

	// WithCert enables channel binding on both sides using a freshly
	// generated self-signed certificate.
	WithCert bool `yaml:"with_cert"`

	// BlobType and BlobData describe the credential the client delegates.
	BlobType uint32 `yaml:"blob_type"`
	BlobData string `yaml:"blob_data"`
}

// DefaultDemoConfig returns a DemoConfig with every field set to its
// default value.
func DefaultDemoConfig() *DemoConfig {
	return &DemoConfig{
		KeySize:  256,
		BlobType: 1,
		BlobData: "hello from srd-demo",
	}
}

// LoadDemoConfig reads a YAML config file, falling back to defaults for
// anything unset. It does not validate the values; an unsupported key_size
// is rejected later by Session.SetKeySize.
func LoadDemoConfig(path string) (*DemoConfig, error) {
	cfg := DefaultDemoConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.KeySize == 0 {
		cfg.KeySize = 256
	}
	return cfg, nil
}
