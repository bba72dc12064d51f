package gpm

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("key", "example.com", "user")

	if cfg.MasterKey != "key" {
		t.Errorf("MasterKey = %q, want %q", cfg.MasterKey, "key")
	}
	if cfg.Target != "example.com" {
		t.Errorf("Target = %q, want %q", cfg.Target, "example.com")
	}
	if cfg.Login != "user" {
		t.Errorf("Login = %q, want %q", cfg.Login, "user")
	}
	if cfg.Length != DefaultLength {
		t.Errorf("Length = %d, want %d", cfg.Length, DefaultLength)
	}
	if cfg.Nonce != DefaultNonce {
		t.Errorf("Nonce = %d, want %d", cfg.Nonce, DefaultNonce)
	}
	if !cfg.Lower || !cfg.Upper || !cfg.Digits {
		t.Error("lowercase, uppercase and digits should be enabled by default")
	}
	if cfg.Symbols {
		t.Error("symbols should be disabled by default")
	}
	if cfg.ContextWidth != DefaultContextWidth {
		t.Errorf("ContextWidth = %d, want %d", cfg.ContextWidth, DefaultContextWidth)
	}
	if cfg.EmbeddingWidth != DefaultEmbeddingWidth {
		t.Errorf("EmbeddingWidth = %d, want %d", cfg.EmbeddingWidth, DefaultEmbeddingWidth)
	}
}

func TestConfigCharsets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []Charset
	}{
		{
			name: "all classes",
			cfg:  Config{Lower: true, Upper: true, Digits: true, Symbols: true},
			want: []Charset{CharsetLower, CharsetUpper, CharsetDigits, CharsetSymbols},
		},
		{
			name: "defaults",
			cfg:  Config{Lower: true, Upper: true, Digits: true},
			want: []Charset{CharsetLower, CharsetUpper, CharsetDigits},
		},
		{
			name: "digits only",
			cfg:  Config{Digits: true},
			want: []Charset{CharsetDigits},
		},
		{
			name: "none selected",
			cfg:  Config{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Charsets()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Charsets() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig("key", "example.com", "user")

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		field   string
	}{
		{
			name:   "valid defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "zero length",
			mutate:  func(c *Config) { c.Length = 0 },
			wantErr: ErrInvalidLength,
			field:   "Length",
		},
		{
			name:    "negative length",
			mutate:  func(c *Config) { c.Length = -4 },
			wantErr: ErrInvalidLength,
			field:   "Length",
		},
		{
			name:    "zero context width",
			mutate:  func(c *Config) { c.ContextWidth = 0 },
			wantErr: ErrInvalidContext,
			field:   "ContextWidth",
		},
		{
			name:    "zero embedding width",
			mutate:  func(c *Config) { c.EmbeddingWidth = 0 },
			wantErr: ErrInvalidEmbedding,
			field:   "EmbeddingWidth",
		},
		{
			name: "no charsets selected",
			mutate: func(c *Config) {
				c.Lower = false
				c.Upper = false
				c.Digits = false
				c.Symbols = false
			},
			wantErr: ErrEmptyVocabulary,
			field:   "Charsets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() should return a *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestConfigValidate_EmptyKeyAllowed(t *testing.T) {
	cfg := DefaultConfig("", "", "")

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
