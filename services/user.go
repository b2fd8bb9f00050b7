package services

import (
	"context"
	"log"

	"WellnessHub/apierror"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Find(ctx context.Context, q models.UserQuery, page models.PageRequest) ([]models.User, int64, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Profile(ctx context.Context, actor models.Actor) (*models.User, error) {
	user, err := s.store.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, notFound(err, util.USER_NOT_FOUND)
	}
	return user, nil
}

/*
* No role means every staff role
* A named role must be one of ADMIN, THERAPIST or DOCTOR
 */
func (s *UserService) Employees(ctx context.Context, rawRole string, page models.PageRequest) (models.Paginated[models.User], error) {
	q := models.UserQuery{Roles: role.Staff}
	if rawRole != "" {
		r, ok := role.Parse(rawRole)
		if !ok || !r.IsStaff() {
			return models.Paginated[models.User]{}, apierror.BadRequest(util.INVALID_ROLE, rawRole)
		}
		q.Roles = []role.Role{r}
	}
	return s.find(ctx, q, page)
}

func (s *UserService) Users(ctx context.Context, page models.PageRequest) (models.Paginated[models.User], error) {
	return s.find(ctx, models.UserQuery{Roles: []role.Role{role.User}}, page)
}

func (s *UserService) Deactivate(ctx context.Context, rawID string) (*models.User, error) {
	id, err := parseObjectID(rawID, util.INVALID_USER_ID)
	if err != nil {
		return nil, err
	}
	user, err := s.store.Deactivate(ctx, id)
	if err != nil {
		return nil, notFound(err, util.USER_NOT_FOUND)
	}
	return user, nil
}

func (s *UserService) find(ctx context.Context, q models.UserQuery, page models.PageRequest) (models.Paginated[models.User], error) {
	page = page.Normalize()
	users, total, err := s.store.Find(ctx, q, page)
	if err != nil {
		log.Println("Error from Find users: ", err)
		return models.Paginated[models.User]{}, err
	}
	return models.NewPaginated(users, total, page), nil
}
