package dial

import (
	"errors"
	"testing"
)

func TestPrimaryColorAsset(t *testing.T) {
	seen := make(map[AssetRef]PrimaryColor)
	for _, c := range PrimaryColors {
		t.Run(c.String(), func(t *testing.T) {
			ref, err := c.Asset()
			if err != nil {
				t.Fatalf("%s.Asset() error = %v", c, err)
			}
			if ref == "" {
				t.Fatalf("%s.Asset() returned an empty reference", c)
			}
			if other, dup := seen[ref]; dup {
				t.Errorf("%s and %s share asset %q", c, other, ref)
			}
			seen[ref] = c
		})
	}
}

func TestPrimaryColorAssetUnknown(t *testing.T) {
	for _, c := range []PrimaryColor{"", "teal", "RED "} {
		ref, err := c.Asset()
		if err == nil {
			t.Errorf("PrimaryColor(%q).Asset() = %q, want error", c, ref)
			continue
		}
		if !errors.Is(err, ErrConfiguration) {
			t.Errorf("PrimaryColor(%q).Asset() error = %v, want ErrConfiguration", c, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) || cfgErr.Field != "primaryColor" {
			t.Errorf("PrimaryColor(%q).Asset() error = %#v, want *ConfigError for primaryColor", c, err)
		}
	}
}

func TestParsePrimaryColor(t *testing.T) {
	tests := []struct {
		in      string
		want    PrimaryColor
		wantErr bool
	}{
		{"red", Red, false},
		{"Blue", Blue, false},
		{" PINK ", Pink, false},
		{"magenta", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePrimaryColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePrimaryColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrimaryColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
