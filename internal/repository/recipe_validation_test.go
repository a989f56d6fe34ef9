package repository

import (
	"testing"

	"foodgram/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestValidateAssociations(t *testing.T) {
	validTags := []uint{1}
	validIngredients := []IngredientAmount{{ID: 1, Amount: 100}}

	tests := []struct {
		name        string
		tagIDs      []uint
		ingredients []IngredientAmount
		wantErr     bool
	}{
		{
			name:        "valid submission",
			tagIDs:      validTags,
			ingredients: validIngredients,
			wantErr:     false,
		},
		{
			name:        "empty tag list",
			tagIDs:      []uint{},
			ingredients: validIngredients,
			wantErr:     true,
		},
		{
			name:        "empty ingredient list",
			tagIDs:      validTags,
			ingredients: []IngredientAmount{},
			wantErr:     true,
		},
		{
			name:   "duplicate ingredient id",
			tagIDs: validTags,
			ingredients: []IngredientAmount{
				{ID: 1, Amount: 100},
				{ID: 1, Amount: 200},
			},
			wantErr: true,
		},
		{
			name:        "amount below lower bound",
			tagIDs:      validTags,
			ingredients: []IngredientAmount{{ID: 1, Amount: 0}},
			wantErr:     true,
		},
		{
			name:        "amount above upper bound",
			tagIDs:      validTags,
			ingredients: []IngredientAmount{{ID: 1, Amount: 32001}},
			wantErr:     true,
		},
		{
			name:        "amount at lower bound",
			tagIDs:      validTags,
			ingredients: []IngredientAmount{{ID: 1, Amount: 1}},
			wantErr:     false,
		},
		{
			name:        "amount at upper bound",
			tagIDs:      validTags,
			ingredients: []IngredientAmount{{ID: 1, Amount: 32000}},
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssociations(tt.tagIDs, tt.ingredients)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCookingTime(t *testing.T) {
	assert.Error(t, ValidateCookingTime(0))
	assert.Error(t, ValidateCookingTime(32001))
	assert.NoError(t, ValidateCookingTime(1))
	assert.NoError(t, ValidateCookingTime(32000))

	assert.True(t, apperrors.IsValidation(ValidateCookingTime(0)))
}
