package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"WellnessHub/apierror"
	"WellnessHub/models"
	"WellnessHub/repository"
	"WellnessHub/role"
	"WellnessHub/util"

	common "github.com/KanapuramVaishnavi/Core/coreServices"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type StaffService struct {
	store UserStore
}

func NewStaffService(store UserStore) *StaffService {
	return &StaffService{store: store}
}

func (s *StaffService) Create(ctx context.Context, r role.Role, in models.StaffInput) (*models.User, error) {
	if !r.IsStaff() {
		return nil, apierror.BadRequest(util.INVALID_ROLE, r.String())
	}
	return createAccount(ctx, s.store, r, in)
}

/*
* Validate the input fields given
* Normalize the email and make sure it is not registered yet
* Hash the password
* Insert with the requested role
 */
func createAccount(ctx context.Context, store UserStore, r role.Role, in models.StaffInput) (*models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = common.NormalizeEmail(strings.TrimSpace(in.Email))
	var missing []any
	if in.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if in.LastName == "" {
		missing = append(missing, "lastName")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if len(in.Password) < minPasswordLength {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY, missing...)
	}

	_, err := store.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, apierror.Conflict(util.EMAIL_EXISTS)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Println("Error from FindByEmail: ", err)
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		log.Println("Error while hashing password: ", err)
		return nil, err
	}
	user := &models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    hash,
		Role:        r,
		Address:     in.Address,
		IDCard:      in.IDCard,
		Description: in.Description,
		IsActive:    true,
	}
	if err := store.Insert(ctx, user); err != nil {
		log.Println("Error from Insert user: ", err)
		return nil, err
	}
	user.Password = ""
	return user, nil
}

/*
* Generate a bcrypt based on the password given
 */
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
