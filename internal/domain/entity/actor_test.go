package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActor_CanMutate(t *testing.T) {
	ownerID := uuid.New()

	owner := Actor{ID: ownerID, Role: RoleFarmer}
	admin := Actor{ID: uuid.New(), Role: RoleAdmin}
	stranger := Actor{ID: uuid.New(), Role: RoleFarmer}

	assert.True(t, owner.CanMutate(ownerID))
	assert.True(t, admin.CanMutate(ownerID))
	assert.False(t, stranger.CanMutate(ownerID))
}

func TestActor_IsAdmin(t *testing.T) {
	assert.True(t, Actor{ID: uuid.New(), Role: RoleAdmin}.IsAdmin())
	assert.False(t, Actor{ID: uuid.New(), Role: RoleExtensionOfficer}.IsAdmin())
	assert.False(t, Actor{}.IsAdmin())
}

func TestRegisterableRoles_ExcludesAdmin(t *testing.T) {
	assert.False(t, RegisterableRoles.Contains(RoleAdmin))
	assert.True(t, RegisterableRoles.Contains(RoleFarmer))
	assert.True(t, RegisterableRoles.Contains(RoleExtensionOfficer))
	assert.True(t, RegisterableRoles.Contains(RoleAgriDealer))
	assert.True(t, RegisterableRoles.Contains(RoleAgriCompany))
}
