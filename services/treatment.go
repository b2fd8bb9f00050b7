package services

import (
	"context"
	"log"
	"strings"

	"WellnessHub/apierror"
	"WellnessHub/models"
	"WellnessHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TreatmentStore interface {
	Insert(ctx context.Context, treatment *models.Treatment) error
	NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error)
	Find(ctx context.Context, page models.PageRequest) ([]models.Treatment, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.TreatmentPatch) (*models.Treatment, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Treatment, error)
}

type TreatmentService struct {
	store TreatmentStore
}

func NewTreatmentService(store TreatmentStore) *TreatmentService {
	return &TreatmentService{store: store}
}

func (s *TreatmentService) Create(ctx context.Context, treatment models.Treatment) (*models.Treatment, error) {
	treatment.Name = strings.TrimSpace(treatment.Name)
	if treatment.Name == "" {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, "name")
	}
	if treatment.Duration <= 0 {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, "duration")
	}
	taken, err := s.store.NameTaken(ctx, treatment.Name, nil)
	if err != nil {
		log.Println("Error from NameTaken(treatment): ", err)
		return nil, err
	}
	if taken {
		return nil, apierror.Conflict(util.TREATMENT_NAME_EXISTS)
	}
	if treatment.Resources == nil {
		treatment.Resources = []string{}
	}
	if treatment.Benefits == nil {
		treatment.Benefits = []string{}
	}
	treatment.ID = primitive.NilObjectID
	if err := s.store.Insert(ctx, &treatment); err != nil {
		log.Println("Error from Insert treatment: ", err)
		return nil, err
	}
	return &treatment, nil
}

func (s *TreatmentService) List(ctx context.Context, page models.PageRequest) (models.Paginated[models.Treatment], error) {
	page = page.Normalize()
	treatments, total, err := s.store.Find(ctx, page)
	if err != nil {
		log.Println("Error from Find treatments: ", err)
		return models.Paginated[models.Treatment]{}, err
	}
	return models.NewPaginated(treatments, total, page), nil
}

func (s *TreatmentService) Update(ctx context.Context, rawID string, patch models.TreatmentPatch) (*models.Treatment, error) {
	id, err := parseObjectID(rawID, util.INVALID_TREATMENT_ID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apierror.BadRequest(util.EMPTY_UPDATE)
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, "duration")
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, "name")
		}
		taken, err := s.store.NameTaken(ctx, name, &id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apierror.Conflict(util.TREATMENT_NAME_EXISTS)
		}
		patch.Name = &name
	}
	treatment, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, util.TREATMENT_NOT_FOUND)
	}
	return treatment, nil
}

// Delete removes the treatment permanently.
func (s *TreatmentService) Delete(ctx context.Context, rawID string) (*models.Treatment, error) {
	id, err := parseObjectID(rawID, util.INVALID_TREATMENT_ID)
	if err != nil {
		return nil, err
	}
	treatment, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, util.TREATMENT_NOT_FOUND)
	}
	return treatment, nil
}
