package server

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"chorus/internal/cache"
	"chorus/internal/middleware"
	"chorus/internal/models"
	"chorus/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "chorus-api"
	tokenAudience = "chorus-client"

	// loginScope keys the Redis failure counters for credential checks.
	loginScope = "login"

	resetTokenTTL = time.Hour
)

// Register handles POST /api/auth/register
// @Summary User registration
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,first_name=string,last_name=string,phone=string,sex=int,birth_date=string} true "Registration request"
// @Success 201 {object} object{token=string,user=models.UserProfile}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Sex       int    `json:"sex"`
		BirthDate string `json:"birth_date"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	// Emails are stored lowercased so login and reset lookups match.
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" || req.FirstName == "" ||
		req.LastName == "" || req.BirthDate == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email, password, name and birth date are required"))
	}

	if err := validation.ValidateEmail(email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePersonName("first name", req.FirstName); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePersonName("last name", req.LastName); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if req.Phone != "" {
		if err := validation.ValidatePhone(req.Phone); err != nil {
			return models.RespondWithError(c, models.NewValidationError(err.Error()))
		}
	}
	if err := validation.ValidateSex(req.Sex); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	birthDate, err := validation.ValidateBirthDate(req.BirthDate, validation.MinRegisterAge, time.Now())
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	// Advisory pre-checks; the unique indexes are the real enforcer.
	existing, err := s.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c,
			models.NewConflictError("An account with this email already exists"))
	}
	if req.Phone != "" {
		byPhone, err := s.userRepo.GetByPhone(c.Context(), req.Phone)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		if byPhone != nil {
			return models.RespondWithError(c,
				models.NewConflictError("An account with this phone number already exists"))
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Email:     email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Sex:       req.Sex,
		BirthDate: birthDate,
		Active:    true,
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"error": false,
		"token": token,
		"user":  user.Profile(),
	})
}

// Login handles POST /api/auth/login
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=models.UserProfile}
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}

	identity := strings.ToLower(strings.TrimSpace(req.Email))
	if identity == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Email and password are required"))
	}

	blocked, wait, err := cache.ThrottleState(c.Context(), loginScope, identity)
	if err != nil {
		// Fail open like the route limiter, but keep throttle outages visible.
		middleware.Logger.WarnContext(c.UserContext(), "login throttle unavailable",
			slog.String("error", err.Error()))
	} else if blocked {
		middleware.LoginThrottleHits.Inc()
		return models.RespondWithError(c, models.NewRateLimitedError(fmt.Sprintf(
			"Too many failed attempts. Try again in %d seconds", int(wait.Round(time.Second).Seconds()))))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), identity)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil || !user.Active {
		_ = cache.RegisterFailure(c.Context(), loginScope, identity)
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		_ = cache.RegisterFailure(c.Context(), loginScope, identity)
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	cache.ClearFailures(c.Context(), loginScope, identity)

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"error": false,
		"token": token,
		"user":  user.Profile(),
	})
}

// Logout handles POST /api/auth/logout
// @Summary User logout
// @Description Revoke the presented JWT token
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Authorization required"))
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid token claims"))
	}

	// Blacklist the JTI until the token would have expired anyway.
	if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
		ttl := time.Hour
		if exp, expOk := claims["exp"].(float64); expOk {
			remaining := time.Until(time.Unix(int64(exp), 0))
			if remaining > 0 {
				ttl = remaining
			}
		}
		if err := s.redis.Set(c.Context(), "blacklist:"+jti, "1", ttl).Err(); err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Logged out",
	})
}

// RequestPasswordReset handles POST /api/auth/password-reset/request
// @Summary Request a password reset
// @Description Issue a single-use reset token for the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string} true "Account email"
// @Success 200 {object} object{message=string}
// @Router /auth/password-reset/request [post]
func (s *Server) RequestPasswordReset(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	// The response never discloses whether the account exists.
	user, err := s.userRepo.GetByEmail(c.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user != nil && user.Active {
		expiry := time.Now().Add(resetTokenTTL)
		user.ResetToken = uuid.NewString()
		user.ResetTokenExpiry = &expiry
		if err := s.userRepo.Update(c.Context(), user); err != nil {
			return models.RespondWithError(c, err)
		}
		// TODO: deliver the token by email once an outbound mailer exists.
		// Until then operators read it from the database.
	}

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "If the account exists, a reset token has been issued",
	})
}

// ConfirmPasswordReset handles POST /api/auth/password-reset/confirm
// @Summary Confirm a password reset
// @Description Set a new password using a previously issued reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{token=string,password=string} true "Reset token and new password"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/password-reset/confirm [post]
func (s *Server) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := s.parseStrictBody(c, &req); err != nil {
		return nil
	}
	if req.Token == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Reset token is required"))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByResetToken(c.Context(), req.Token)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil || user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return models.RespondWithError(c,
			models.NewUnauthorizedError("Invalid or expired reset token"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user.Password = string(hashedPassword)
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, err)
	}

	cache.ClearFailures(c.Context(), loginScope, strings.ToLower(user.Email))

	return c.JSON(fiber.Map{
		"error":   false,
		"message": "Password updated",
	})
}

// generateToken creates a JWT token for the given user ID
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"iss": tokenIssuer,                            // Issuer
		"aud": tokenAudience,                          // Audience
		"exp": now.Add(time.Hour * 24 * 7).Unix(),     // Expiration (7 days)
		"iat": now.Unix(),                             // Issued at
		"nbf": now.Unix(),                             // Not before
		"jti": s.generateJTI(),                        // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
