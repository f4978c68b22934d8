package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblynx/backoffice_backend/config"
	"github.com/weblynx/backoffice_backend/middleware"
	"github.com/weblynx/backoffice_backend/models"
	"github.com/weblynx/backoffice_backend/services"
	"github.com/weblynx/backoffice_backend/utils"
)

// AuthController handles login, token refresh and the current-user endpoint
type AuthController struct {
	db *mongo.Client
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{db: db}
}

func (c *AuthController) users() *mongo.Collection {
	return config.GetCollection(c.db, "users")
}

// Login authenticates with email and password and issues a token pair
func (c *AuthController) Login(ctx echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid email or password format")
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := c.users().FindOne(dbCtx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, "Invalid credentials")
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return respondError(ctx, http.StatusUnauthorized, "Invalid credentials")
	}

	role := user.Role
	if role == "" {
		role = "employee"
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, role)
	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		return respondError(ctx, http.StatusInternalServerError, "Failed to generate token")
	}

	_, _ = c.users().UpdateOne(dbCtx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"isActive":       true,
		"lastActivityAt": time.Now(),
	}})

	return respond(ctx, http.StatusOK, "Login successful", models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Role:         role,
		FullName:     user.FullName,
	})
}

// FirebaseLogin exchanges a verified Firebase ID token for our token pair.
// The Firebase account must already exist in the users collection; this
// endpoint never auto-provisions accounts.
func (c *AuthController) FirebaseLogin(ctx echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request")
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 10*time.Second)
	defer cancel()

	fbToken, err := services.VerifyFirebaseToken(dbCtx, req.IDToken)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, "Invalid Firebase token")
	}

	email := services.FirebaseEmail(fbToken)
	if email == "" {
		return respondError(ctx, http.StatusUnauthorized, "Firebase token has no email claim")
	}

	var user models.User
	err = c.users().FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return respondError(ctx, http.StatusForbidden, "No account for this email")
	}

	role := user.Role
	if role == "" {
		role = "employee"
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, role)
	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		return respondError(ctx, http.StatusInternalServerError, "Failed to generate token")
	}

	return respond(ctx, http.StatusOK, "Login successful", models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Role:         role,
		FullName:     user.FullName,
	})
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (c *AuthController) Refresh(ctx echo.Context) error {
	var req models.RefreshRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request")
	}

	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return respondError(ctx, http.StatusUnauthorized, "Invalid refresh token")
	}

	token, refreshToken, err := middleware.GenerateJWT(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, "Failed to generate token")
	}

	return respond(ctx, http.StatusOK, "Token refreshed", models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Role:         claims.Role,
	})
}

// Me returns the authenticated user's profile
func (c *AuthController) Me(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return respondError(ctx, http.StatusUnauthorized, "Unauthorized")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid user ID")
	}

	dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err = c.users().FindOne(dbCtx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return respondError(ctx, http.StatusNotFound, "User not found")
	}

	return respond(ctx, http.StatusOK, "User retrieved", user)
}

// Logout marks the user inactive; tokens stay valid until expiry
func (c *AuthController) Logout(ctx echo.Context) error {
	claims := middleware.GetUserFromToken(ctx)
	if claims == nil {
		return respondError(ctx, http.StatusUnauthorized, "Unauthorized")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err == nil {
		dbCtx, cancel := context.WithTimeout(ctx.Request().Context(), 10*time.Second)
		defer cancel()
		_, _ = c.users().UpdateOne(dbCtx, bson.M{"_id": userID}, bson.M{"$set": bson.M{"isActive": false}})
	}

	return respond(ctx, http.StatusOK, "Logged out", nil)
}
