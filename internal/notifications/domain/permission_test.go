package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuldo/mindfuldo/internal/notifications/domain"
)

func TestParsePermission(t *testing.T) {
	tests := []struct {
		input string
		want  domain.Permission
	}{
		{"default", domain.PermissionDefault},
		{"", domain.PermissionDefault},
		{"granted", domain.PermissionGranted},
		{"GRANTED", domain.PermissionGranted},
		{"denied", domain.PermissionDenied},
		{"  denied  ", domain.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParsePermission(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePermission_Unknown(t *testing.T) {
	got, err := domain.ParsePermission("maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidPermission)
	assert.Equal(t, domain.PermissionDefault, got)
}

func TestCanNotify(t *testing.T) {
	assert.True(t, domain.PermissionGranted.CanNotify())
	assert.False(t, domain.PermissionDefault.CanNotify())
	assert.False(t, domain.PermissionDenied.CanNotify())
}
