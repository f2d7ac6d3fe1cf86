package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfileValidate(t *testing.T) {
	valid := func() *Profile {
		return &Profile{
			Refresh: time.Second,
			Plugins: []PluginEntry{{Type: "clock", Padding: 1}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr string
	}{
		{
			name:   "Valid",
			mutate: func(*Profile) {},
		},
		{
			name:    "ZeroRefresh",
			mutate:  func(p *Profile) { p.Refresh = 0 },
			wantErr: "refresh",
		},
		{
			name:    "MissingType",
			mutate:  func(p *Profile) { p.Plugins[0].Type = "" },
			wantErr: "no type",
		},
		{
			name:    "NegativePadding",
			mutate:  func(p *Profile) { p.Plugins[0].Padding = -1 },
			wantErr: "padding",
		},
		{
			name:    "NegativeBorder",
			mutate:  func(p *Profile) { p.Plugins[0].Border = -2 },
			wantErr: "border",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := valid()
			tt.mutate(profile)
			err := profile.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
