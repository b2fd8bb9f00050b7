package services

import (
	"context"
	"net/http"
	"testing"

	"WellnessHub/models"
	"WellnessHub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTreatmentService_Create(t *testing.T) {
	store := new(MockTreatmentStore)
	svc := NewTreatmentService(store)
	ctx := context.Background()

	store.On("NameTaken", ctx, "Hot Stone", (*primitive.ObjectID)(nil)).Return(false, nil)
	store.On("Insert", ctx, mock.AnythingOfType("*models.Treatment")).Return(nil)

	created, err := svc.Create(ctx, models.Treatment{Name: " Hot Stone ", Duration: 60})
	require.NoError(t, err)
	assert.Equal(t, "Hot Stone", created.Name)
	assert.NotNil(t, created.Resources)
	assert.NotNil(t, created.Benefits)
	store.AssertExpectations(t)
}

func TestTreatmentService_Create_Validation(t *testing.T) {
	store := new(MockTreatmentStore)
	svc := NewTreatmentService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Treatment{Name: "Sauna"})
	assertStatus(t, err, http.StatusBadRequest)

	store.On("NameTaken", ctx, "Sauna", (*primitive.ObjectID)(nil)).Return(true, nil)
	_, err = svc.Create(ctx, models.Treatment{Name: "Sauna", Duration: 30})
	assertStatus(t, err, http.StatusConflict)
}

func TestTreatmentService_Update(t *testing.T) {
	store := new(MockTreatmentStore)
	svc := NewTreatmentService(store)
	ctx := context.Background()
	id := primitive.NewObjectID()

	_, err := svc.Update(ctx, id.Hex(), models.TreatmentPatch{})
	assertStatus(t, err, http.StatusBadRequest)

	zero := 0
	_, err = svc.Update(ctx, id.Hex(), models.TreatmentPatch{Duration: &zero})
	assertStatus(t, err, http.StatusBadRequest)

	benefits := []string{"sleep"}
	patch := models.TreatmentPatch{Benefits: &benefits}
	store.On("Update", ctx, id, patch).Return(&models.Treatment{ID: id, Benefits: benefits}, nil)
	updated, err := svc.Update(ctx, id.Hex(), patch)
	require.NoError(t, err)
	assert.Equal(t, benefits, updated.Benefits)
}

func TestTreatmentService_Delete(t *testing.T) {
	store := new(MockTreatmentStore)
	svc := NewTreatmentService(store)
	ctx := context.Background()
	id := primitive.NewObjectID()

	store.On("Delete", ctx, id).Return(nil, repository.ErrNotFound)
	_, err := svc.Delete(ctx, id.Hex())
	assertStatus(t, err, http.StatusNotFound)

	_, err = svc.Delete(ctx, "bad")
	assertStatus(t, err, http.StatusBadRequest)
}
