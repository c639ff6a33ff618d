package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"trak/backend/config"
	"trak/backend/models"
	"trak/backend/utils"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// [+] Register godoc
// @Summary Register a new user
// @Description Creates a new user account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	type RegisterInput struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "Email, username and password are required")
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		AuthProvider: "email",
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// [+] Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "Incorrect email or password")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Incorrect email or password")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Me returns the authenticated user's profile.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ac.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"id":            user.ID,
		"email":         user.Email,
		"username":      user.Username,
		"is_verified":   user.IsVerified,
		"auth_provider": user.AuthProvider,
		"created_at":    user.CreatedAt,
	})
}

// Logout is stateless: tokens simply expire. Kept for API symmetry.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

const oauthStateCookie = "oauth_state"

// GoogleLogin redirects the client to Google's consent screen.
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return utils.InternalServerError(c, "Could not generate state")
	}
	state := hex.EncodeToString(buf)

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
	})

	conf := utils.GoogleOAuthConfig(ac.Cfg)
	return c.Redirect(conf.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback exchanges the authorization code, finds or creates the
// matching user and hands a token back to the frontend.
func (ac *AuthController) GoogleCallback(c *fiber.Ctx) error {
	state := c.Query("state")
	expected := c.Cookies(oauthStateCookie)

	// The state is single-use: expire the cookie as soon as it is read
	// so the same value cannot be replayed.
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	if state == "" || state != expected {
		return utils.BadRequest(c, "Invalid OAuth state")
	}
	code := c.Query("code")
	if code == "" {
		return utils.BadRequest(c, "Missing authorization code")
	}

	conf := utils.GoogleOAuthConfig(ac.Cfg)
	info, err := utils.FetchGoogleUserInfo(c.Context(), conf, code)
	if err != nil {
		return utils.BadRequest(c, "Authentication failed: "+err.Error())
	}

	var user models.User
	err = ac.DB.Where("email = ?", info.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		googleID := info.Sub
		user = models.User{
			Email:        info.Email,
			Username:     info.Name,
			GoogleID:     &googleID,
			AuthProvider: "google",
			IsVerified:   true,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			return utils.InternalServerError(c, "Could not create user")
		}
	case err != nil:
		return utils.InternalServerError(c, "Could not query database")
	default:
		// Link the Google identity to an existing email account.
		if user.GoogleID == nil {
			googleID := info.Sub
			user.GoogleID = &googleID
			user.AuthProvider = "google"
			if err := ac.DB.Save(&user).Error; err != nil {
				return utils.InternalServerError(c, "Could not update user")
			}
		}
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Redirect(ac.Cfg.FrontendURL+"/auth/callback?access_token="+token, fiber.StatusTemporaryRedirect)
}
