package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfile_IsAdmin(t *testing.T) {
	assert.True(t, (&Profile{Role: strPtr("admin")}).IsAdmin("admin"))
	assert.False(t, (&Profile{Role: strPtr("Admin")}).IsAdmin("admin"))
	assert.False(t, (&Profile{Role: strPtr("member")}).IsAdmin("admin"))
	assert.False(t, (&Profile{}).IsAdmin("admin"))

	var nilProfile *Profile
	assert.False(t, nilProfile.IsAdmin("admin"))
}

func TestProfile_NormalizedUsername(t *testing.T) {
	tests := []struct {
		name   string
		p      *Profile
		want   string
		wantOK bool
	}{
		{name: "nil profile", p: nil},
		{name: "no username", p: &Profile{}},
		{name: "blank username", p: &Profile{Username: strPtr("   ")}},
		{name: "mixed case", p: &Profile{Username: strPtr("  Ola.Nordmann ")}, want: "ola.nordmann", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.NormalizedUsername()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
