package services

import (
	"context"
	"log"
	"strings"

	"WellnessHub/apierror"
	"WellnessHub/cache"
	"WellnessHub/models"
	"WellnessHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CabinStore interface {
	Insert(ctx context.Context, cabin *models.Cabin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error)
	NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error)
	FindActive(ctx context.Context, page models.PageRequest) ([]models.Cabin, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.CabinPatch) (*models.Cabin, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error)
}

type CabinService struct {
	store CabinStore
	cache cache.Cache
}

func NewCabinService(store CabinStore, c cache.Cache) *CabinService {
	if c == nil {
		c = cache.Noop{}
	}
	return &CabinService{store: store, cache: c}
}

/*
* Trim the name and make sure no other cabin holds it
* Persist as active
 */
func (s *CabinService) Create(ctx context.Context, name, description, imageURL string) (*models.Cabin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, "name")
	}
	taken, err := s.store.NameTaken(ctx, name, nil)
	if err != nil {
		log.Println("Error from NameTaken(cabin): ", err)
		return nil, err
	}
	if taken {
		return nil, apierror.Conflict(util.CABIN_NAME_EXISTS)
	}
	cabin := &models.Cabin{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
		IsActive:    true,
	}
	if err := s.store.Insert(ctx, cabin); err != nil {
		log.Println("Error from Insert cabin: ", err)
		return nil, err
	}
	return cabin, nil
}

func (s *CabinService) List(ctx context.Context, page models.PageRequest) (models.Paginated[models.Cabin], error) {
	page = page.Normalize()
	cabins, total, err := s.store.FindActive(ctx, page)
	if err != nil {
		log.Println("Error from FindActive cabins: ", err)
		return models.Paginated[models.Cabin]{}, err
	}
	return models.NewPaginated(cabins, total, page), nil
}

func (s *CabinService) GetByID(ctx context.Context, rawID string) (*models.Cabin, error) {
	id, err := parseObjectID(rawID, util.INVALID_CABIN_ID)
	if err != nil {
		return nil, err
	}
	key := cache.CabinKey + id.Hex()
	var cached models.Cabin
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Println("Error from cache Get: ", err)
	} else if hit {
		return &cached, nil
	}
	cabin, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.CABIN_NOT_FOUND)
	}
	if err := s.cache.Set(ctx, key, cabin); err != nil {
		log.Println("Error from cache Set: ", err)
	}
	return cabin, nil
}

func (s *CabinService) Update(ctx context.Context, rawID string, patch models.CabinPatch) (*models.Cabin, error) {
	id, err := parseObjectID(rawID, util.INVALID_CABIN_ID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apierror.BadRequest(util.EMPTY_UPDATE)
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
			return nil, apierror.Conflict(util.CABIN_NAME_EXISTS)
		}
		patch.Name = &name
	}
	cabin, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, util.CABIN_NOT_FOUND)
	}
	s.invalidate(ctx, id)
	return cabin, nil
}

func (s *CabinService) Delete(ctx context.Context, rawID string) (*models.Cabin, error) {
	id, err := parseObjectID(rawID, util.INVALID_CABIN_ID)
	if err != nil {
		return nil, err
	}
	cabin, err := s.store.Deactivate(ctx, id)
	if err != nil {
		return nil, notFound(err, util.CABIN_NOT_FOUND)
	}
	s.invalidate(ctx, id)
	return cabin, nil
}

func (s *CabinService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.Delete(ctx, cache.CabinKey+id.Hex()); err != nil {
		log.Println("Error from cache Delete: ", err)
	}
}
