package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFacility(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		fname    string
		wantCode string
		wantName string
	}{
		{
			name:     "legacy screen x pair rewritten",
			code:     "SCREEN X PREMIUM THEATER",
			fname:    "SCREEN X PREMIUM THEATER",
			wantCode: "SCREEN X",
			wantName: "SCREEN X",
		},
		{
			name:     "legacy code rewrites name regardless of input name",
			code:     "SCREEN X PREMIUM THEATER",
			fname:    "Premium Theater",
			wantCode: "SCREEN X",
			wantName: "SCREEN X",
		},
		{
			name:     "other codes unchanged",
			code:     "IMAX",
			fname:    "IMAX Laser",
			wantCode: "IMAX",
			wantName: "IMAX Laser",
		},
		{
			name:     "empty input unchanged",
			code:     "",
			fname:    "",
			wantCode: "",
			wantName: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, name := NormalizeFacility(tt.code, tt.fname)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
