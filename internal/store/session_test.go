package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golibhub/golib-api/internal/models"
)

func TestStoreStartsWithDefaultAdminSession(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)

	user, ok := s.CurrentUser()
	require.True(t, ok)
	require.Equal(t, models.RoleAdmin, user.Role)
	require.Equal(t, "admin", user.Username)
}

func TestLoginDerivesSyntheticIdentityFromRole(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)

	staff := s.Login(models.RoleStaff)
	require.Equal(t, "Staff Member", staff.Name)
	require.Equal(t, "staff", staff.Username)

	admin := s.Login(models.RoleAdmin)
	require.Equal(t, "Administrator", admin.Name)
	require.Equal(t, "admin", admin.Username)
}

func TestLogoutClearsSessionAndBlocksAdminCommands(t *testing.T) {
	s := testStore(&fakeSaver{}, morningNine)
	s.Logout()

	_, ok := s.CurrentUser()
	require.False(t, ok)

	require.ErrorIs(t, s.UpdateSeatCount(10), ErrForbidden)
	_, err := s.AddShift(NewShift{Name: "Night"})
	require.ErrorIs(t, err, ErrForbidden)
}
