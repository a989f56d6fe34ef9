package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram/internal/apperrors"
	"foodgram/internal/controllers"
	"foodgram/internal/models"
	"foodgram/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestListTags(t *testing.T) {
	mockRepo := new(mocks.MockTagRepository)
	mockRepo.On("FindAll").Return([]models.Tag{
		{ID: 1, Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{ID: 2, Name: "Обед", Color: "#49B64E", Slug: "lunch"},
	}, nil)

	router := setupTestRouter()
	controller := controllers.NewTagController(mockRepo)
	router.GET("/api/tags", controller.ListTags)

	req, _ := http.NewRequest(http.MethodGet, "/api/tags", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "breakfast", first["slug"])
	mockRepo.AssertExpectations(t)
}

func TestGetTagByID(t *testing.T) {
	tests := []struct {
		name           string
		tagID          string
		setupMock      func(*mocks.MockTagRepository)
		expectedStatus int
	}{
		{
			name:  "existing tag",
			tagID: "1",
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("FindByID", uint(1)).Return(&models.Tag{ID: 1, Name: "Ужин", Color: "#8775D2", Slug: "dinner"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "missing tag",
			tagID: "99",
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("FindByID", uint(99)).Return(nil, fmt.Errorf("%w: tag 99", apperrors.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			tagID:          "abc",
			setupMock:      func(m *mocks.MockTagRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockTagRepository)
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			controller := controllers.NewTagController(mockRepo)
			router.GET("/api/tags/:id", controller.GetTagByID)

			req, _ := http.NewRequest(http.MethodGet, "/api/tags/"+tt.tagID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestListIngredientsPassesNameFilter(t *testing.T) {
	mockRepo := new(mocks.MockIngredientRepository)
	mockRepo.On("FindAll", "кар").Return([]models.Ingredient{
		{ID: 3, Name: "Картофель", MeasurementUnit: "г"},
	}, nil)

	router := setupTestRouter()
	controller := controllers.NewIngredientController(mockRepo)
	router.GET("/api/ingredients", controller.ListIngredients)

	req, _ := http.NewRequest(http.MethodGet, "/api/ingredients?name=%D0%BA%D0%B0%D1%80", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	mockRepo.AssertExpectations(t)
}

func TestListIngredientsWithoutFilter(t *testing.T) {
	mockRepo := new(mocks.MockIngredientRepository)
	mockRepo.On("FindAll", "").Return([]models.Ingredient{
		{ID: 1, Name: "Соль", MeasurementUnit: "г"},
		{ID: 2, Name: "Молоко", MeasurementUnit: "мл"},
	}, nil)

	router := setupTestRouter()
	controller := controllers.NewIngredientController(mockRepo)
	router.GET("/api/ingredients", controller.ListIngredients)

	req, _ := http.NewRequest(http.MethodGet, "/api/ingredients", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}
