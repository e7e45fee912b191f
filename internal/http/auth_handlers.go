package http

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/PIliev24/green-street/internal/domain"
	"github.com/PIliev24/green-street/internal/validate"
)

type AuthHandler struct {
	DB *pgxpool.Pool
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func generateToken(userID string) (string, error) {
	secret := []byte(strings.TrimSpace(os.Getenv("JWT_SECRET")))

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Login checks credentials against the users table and returns a session
// token. Bad credentials are a 401, never a field error: the boundary owns
// authorization failures.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid body")
	}

	if errs := validate.Login(body.Username, body.Password); errs != nil {
		return FailFields(c, fiber.StatusBadRequest, errs)
	}

	var user domain.User
	err := h.DB.QueryRow(c.UserContext(), `
SELECT id::text, username, password_hash, created_at::text FROM users WHERE username = $1
`, body.Username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return Fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return Fail(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := generateToken(user.ID)
	if err != nil {
		return Fail(c, fiber.StatusInternalServerError, "could not create token")
	}

	return Data(c, fiber.StatusOK, authResponse{Token: token})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if strings.TrimSpace(userID) == "" {
		return Fail(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user := domain.User{ID: userID}
	err := h.DB.QueryRow(c.UserContext(), `
SELECT username, created_at::text FROM users WHERE id = $1::uuid
`, userID).Scan(&user.Username, &user.CreatedAt)
	if err != nil {
		return Fail(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return Data(c, fiber.StatusOK, user)
}
