package services

import (
	"context"
	"io"

	"WellnessHub/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCabinStore struct {
	mock.Mock
}

func (m *MockCabinStore) Insert(ctx context.Context, cabin *models.Cabin) error {
	args := m.Called(ctx, cabin)
	if cabin != nil {
		cabin.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockCabinStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cabin), args.Error(1)
}

func (m *MockCabinStore) NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, name, except)
	return args.Bool(0), args.Error(1)
}

func (m *MockCabinStore) FindActive(ctx context.Context, page models.PageRequest) ([]models.Cabin, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Cabin), args.Get(1).(int64), args.Error(2)
}

func (m *MockCabinStore) Update(ctx context.Context, id primitive.ObjectID, patch models.CabinPatch) (*models.Cabin, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cabin), args.Error(1)
}

func (m *MockCabinStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Cabin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cabin), args.Error(1)
}

type MockTreatmentStore struct {
	mock.Mock
}

func (m *MockTreatmentStore) Insert(ctx context.Context, treatment *models.Treatment) error {
	args := m.Called(ctx, treatment)
	if treatment != nil {
		treatment.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockTreatmentStore) NameTaken(ctx context.Context, name string, except *primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, name, except)
	return args.Bool(0), args.Error(1)
}

func (m *MockTreatmentStore) Find(ctx context.Context, page models.PageRequest) ([]models.Treatment, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Treatment), args.Get(1).(int64), args.Error(2)
}

func (m *MockTreatmentStore) Update(ctx context.Context, id primitive.ObjectID, patch models.TreatmentPatch) (*models.Treatment, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Treatment), args.Error(1)
}

func (m *MockTreatmentStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Treatment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Treatment), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Insert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Find(ctx context.Context, q models.UserQuery, page models.PageRequest) ([]models.User, int64, error) {
	args := m.Called(ctx, q, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, publicID string, file io.Reader) (string, error) {
	args := m.Called(ctx, publicID, file)
	return args.String(0), args.Error(1)
}

type MockCredentialStore struct {
	MockUserStore
}

func (m *MockCredentialStore) FindCredentials(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
