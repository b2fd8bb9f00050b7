package middleware

import (
	"log"

	"WellnessHub/apierror"
	"WellnessHub/models"
	"WellnessHub/role"
	"WellnessHub/util"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"
	"github.com/KanapuramVaishnavi/Core/config/jwt"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserIDKey = "userId"
	RoleKey   = "role"
)

// Identity is what a verified token tells us about the caller.
type Identity struct {
	UserID string
	Role   string
}

type TokenVerifier interface {
	Verify(token string) (*Identity, error)
}

// JWTVerifier checks HS256 tokens signed with jwt.JwtKey.
type JWTVerifier struct{}

func (JWTVerifier) Verify(token string) (*Identity, error) {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	if claims == nil {
		return nil, apierror.Unauthorized(util.INVALID_TOKEN)
	}
	return &Identity{UserID: claims.Code, Role: claims.RoleCode}, nil
}

/*
* Extract the bearer token from the header
* Verify it and parse the user id and role out of the claims
* Store both in the context for Authorize and the controllers
 */
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := authorization.ExtractTokenFromHeader(c)
		if err != nil {
			abortWith(c, apierror.Unauthorized(util.NO_TOKEN))
			return
		}
		identity, err := verifier.Verify(token)
		if err != nil {
			log.Println("Error from Verify token: ", err)
			abortWith(c, apierror.Unauthorized(util.INVALID_TOKEN))
			return
		}
		userID, err := primitive.ObjectIDFromHex(identity.UserID)
		if err != nil {
			abortWith(c, apierror.Unauthorized(util.INVALID_TOKEN))
			return
		}
		r, ok := role.Parse(identity.Role)
		if !ok {
			abortWith(c, apierror.Unauthorized(util.NOT_AUTHENTICATED))
			return
		}
		c.Set(UserIDKey, userID)
		c.Set(RoleKey, r)
		c.Next()
	}
}

// Authorize lets the request through only when the caller has one of roles.
func Authorize(roles ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			abortWith(c, apierror.Unauthorized(util.NOT_AUTHENTICATED))
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		abortWith(c, apierror.Forbidden(util.FORBIDDEN))
	}
}

func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	rawID, ok := c.Get(UserIDKey)
	if !ok {
		return models.Actor{}, false
	}
	rawRole, ok := c.Get(RoleKey)
	if !ok {
		return models.Actor{}, false
	}
	id, ok := rawID.(primitive.ObjectID)
	if !ok {
		return models.Actor{}, false
	}
	r, ok := rawRole.(role.Role)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{ID: id, Role: r}, true
}

func abortWith(c *gin.Context, err *apierror.APIError) {
	c.AbortWithStatusJSON(err.StatusCode, util.FailedResponse(err))
}
