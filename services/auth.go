package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"WellnessHub/apierror"
	"WellnessHub/cache"
	"WellnessHub/models"
	"WellnessHub/repository"
	"WellnessHub/role"
	"WellnessHub/util"

	"github.com/KanapuramVaishnavi/Core/config/jwt"
	common "github.com/KanapuramVaishnavi/Core/coreServices"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 10 * time.Minute
)

type CredentialStore interface {
	UserStore
	FindCredentials(ctx context.Context, email string) (*models.User, error)
}

type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService struct {
	store    CredentialStore
	attempts cache.Counter
	issue    func(user *models.User) (string, error)
}

func NewAuthService(store CredentialStore, attempts cache.Counter) *AuthService {
	if attempts == nil {
		attempts = cache.Noop{}
	}
	return &AuthService{store: store, attempts: attempts, issue: issueToken}
}

// Register creates a USER account; staff accounts go through StaffService.
func (s *AuthService) Register(ctx context.Context, in models.StaffInput) (*models.User, error) {
	return createAccount(ctx, s.store, role.User, in)
}

/*
* Find the account by normalized email
* Lock out after maxLoginAttempts failures inside the window
* Compare the bcrypt hash and issue a token
 */
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = common.NormalizeEmail(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apierror.BadRequest(util.INVALID_REQUEST_BODY)
	}
	key := cache.LoginFailKey + email

	user, err := s.store.FindCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apierror.Unauthorized(util.INVALID_CREDENTIALS)
		}
		log.Println("Error from FindCredentials: ", err)
		return nil, err
	}
	if !user.IsActive {
		return nil, apierror.Forbidden(util.ACCOUNT_INACTIVE)
	}
	failed, err := s.attempts.Count(ctx, key)
	if err != nil {
		log.Println("Unable to read login count: ", err)
	}
	if failed >= maxLoginAttempts {
		return nil, apierror.New(http.StatusTooManyRequests, util.ACCOUNT_LOCKED)
	}
	if err := verifyPassword(user.Password, password); err != nil {
		attempts, incErr := s.attempts.Incr(ctx, key, loginAttemptWindow)
		if incErr != nil {
			log.Println("Unable to increment login count: ", incErr)
		}
		if attempts >= maxLoginAttempts {
			return nil, apierror.New(http.StatusTooManyRequests, util.ACCOUNT_LOCKED)
		}
		return nil, apierror.Unauthorized(util.INVALID_CREDENTIALS)
	}
	if err := s.attempts.Reset(ctx, key); err != nil {
		log.Println("Unable to reset login count: ", err)
	}

	token, err := s.issue(user)
	if err != nil {
		log.Println("Error from GenerateJWT: ", err)
		return nil, err
	}
	user.Password = ""
	return &Session{Token: token, User: user}, nil
}

func verifyPassword(hash, password string) error {
	if strings.TrimSpace(hash) == "" {
		return errors.New("stored password missing or invalid")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func issueToken(user *models.User) (string, error) {
	return jwt.GenerateJWT(user.ID.Hex(), user.Email, user.Role.String(), repository.UserCollection, "", user.Role == role.Admin)
}
