package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, VerificationPending.CanTransitionTo(VerificationVerified))
	assert.True(t, VerificationPending.CanTransitionTo(VerificationRejected))

	// Decisions are one-way.
	assert.False(t, VerificationVerified.CanTransitionTo(VerificationRejected))
	assert.False(t, VerificationVerified.CanTransitionTo(VerificationPending))
	assert.False(t, VerificationRejected.CanTransitionTo(VerificationVerified))
	assert.False(t, VerificationRejected.CanTransitionTo(VerificationPending))
	assert.False(t, VerificationPending.CanTransitionTo(VerificationPending))
}

func TestSupplier_IsVerified(t *testing.T) {
	assert.True(t, (&Supplier{VerificationStatus: VerificationVerified}).IsVerified())
	assert.False(t, (&Supplier{VerificationStatus: VerificationPending}).IsVerified())
	assert.False(t, (&Supplier{VerificationStatus: VerificationRejected}).IsVerified())
}

func TestSupplierTypeLabels_CoverAllTypes(t *testing.T) {
	types := []SupplierType{
		SupplierTypeInputDealer, SupplierTypeEquipment,
		SupplierTypeServiceProvider, SupplierTypeCooperative, SupplierTypeProcessor,
	}
	for _, st := range types {
		assert.NotEmpty(t, SupplierTypeLabels[st], string(st))
	}
}
