package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		user, err := NewUser("Ada", "Ada@Example.COM", "correct horse battery", RoleStaff)
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", user.Email)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash)
		assert.True(t, user.VerifyPassword("correct horse battery"))
		assert.False(t, user.VerifyPassword("wrong"))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := NewUser("Ada", "ada@example.com", "short", RoleStaff)
		require.Error(t, err)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := NewUser("Ada", "ada@example.com", "longenough", Role("AUDITOR"))
		require.Error(t, err)
	})
}

func TestUser_AssignWarehouse(t *testing.T) {
	t.Run("assigns warehouse admins", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "longenough", RoleWarehouseAdmin)
		require.NoError(t, err)
		warehouseID := uuid.New()

		require.NoError(t, user.AssignWarehouse(warehouseID))
		require.NotNil(t, user.WarehouseID)
		assert.Equal(t, warehouseID, *user.WarehouseID)
	})

	t.Run("rejects other roles", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "longenough", RoleStaff)
		require.NoError(t, err)

		require.Error(t, user.AssignWarehouse(uuid.New()))
		assert.Nil(t, user.WarehouseID)
	})
}

func TestUser_CanApproveTransferTo(t *testing.T) {
	destination := uuid.New()

	t.Run("super admin approves anywhere", func(t *testing.T) {
		user, err := NewUser("Root", "root@example.com", "longenough", RoleSuperAdmin)
		require.NoError(t, err)
		assert.True(t, user.CanApproveTransferTo(destination))
	})

	t.Run("warehouse admin approves only into their warehouse", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "longenough", RoleWarehouseAdmin)
		require.NoError(t, err)
		require.NoError(t, user.AssignWarehouse(destination))

		assert.True(t, user.CanApproveTransferTo(destination))
		assert.False(t, user.CanApproveTransferTo(uuid.New()))
	})

	t.Run("unassigned warehouse admin approves nothing", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "longenough", RoleWarehouseAdmin)
		require.NoError(t, err)
		assert.False(t, user.CanApproveTransferTo(destination))
	})

	t.Run("staff approve nothing", func(t *testing.T) {
		user, err := NewUser("Lee", "lee@example.com", "longenough", RoleStaff)
		require.NoError(t, err)
		assert.False(t, user.CanApproveTransferTo(destination))
	})
}
