package repository

import (
	"testing"

	"foodgram/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestSelfSubscriptionRejectedBeforeAnyWrite(t *testing.T) {
	// The guard fires before the store is touched, so no database is needed.
	repo := NewRelationRepository(nil)

	err := repo.Add(RelationSubscription, 5, 5)

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}
