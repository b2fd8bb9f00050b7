package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"WellnessHub/role"

	"github.com/KanapuramVaishnavi/Core/config/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAuthRouter(roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Authenticate(JWTVerifier{}), Authorize(roles...), func(c *gin.Context) {
		actor, _ := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.Hex(), "role": actor.Role})
	})
	return r
}

func signToken(t *testing.T, userID, r string) string {
	t.Helper()
	jwt.JwtKey = []byte("test-secret")
	token, err := jwt.GenerateJWT(userID, "user@example.com", r, "users", "", false)
	require.NoError(t, err)
	return token
}

func call(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingToken(t *testing.T) {
	w := call(newAuthRouter(role.Admin), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(401), body["statusCode"])
}

func TestAuthenticateInvalidToken(t *testing.T) {
	w := call(newAuthRouter(role.Admin), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsTokenWithoutObjectID(t *testing.T) {
	token := signToken(t, "U0001", "ADMIN")
	w := call(newAuthRouter(role.Admin), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorizeWrongRole(t *testing.T) {
	token := signToken(t, primitive.NewObjectID().Hex(), "USER")
	w := call(newAuthRouter(role.Admin), token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorizeAllowedRole(t *testing.T) {
	id := primitive.NewObjectID()
	token := signToken(t, id.Hex(), "doctor")
	w := call(newAuthRouter(role.Admin, role.Doctor), token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.Hex(), body["id"])
	assert.Equal(t, "DOCTOR", body["role"])
}

func TestAuthorizeWithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Authorize(role.Admin), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := call(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
