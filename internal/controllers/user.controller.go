package controllers

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"foodgram/internal/middleware"
	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type UserController struct {
	userRepo     repository.UserRepository
	recipeRepo   repository.RecipeRepository
	relationRepo repository.RelationRepository
}

func NewUserController(
	userRepo repository.UserRepository,
	recipeRepo repository.RecipeRepository,
	relationRepo repository.RelationRepository,
) *UserController {
	return &UserController{
		userRepo:     userRepo,
		recipeRepo:   recipeRepo,
		relationRepo: relationRepo,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) isSubscribed(c *gin.Context, authorID uint) bool {
	requesterID := middleware.CurrentUserID(c)
	if requesterID == 0 {
		return false
	}
	subscribed, _ := uc.relationRepo.Exists(repository.RelationSubscription, requesterID, authorID)
	return subscribed
}

// RegisterUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body controllers.registerRequest true "User data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to register user"
// @Router /api/users [post]
func (uc *UserController) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := uc.userRepo.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "A user with this email already exists",
		})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register user",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
	}

	if err := uc.userRepo.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to register user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User registered successfully",
		"data":    newUserResponse(&user, false),
	})
}

// LoginUser godoc
// @Summary Obtain an auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body controllers.loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/token/login [post]
func (uc *UserController) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})

	tokenString, err := jwtToken.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    gin.H{"auth_token": tokenString},
	})
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve users"
// @Router /api/users [get]
func (uc *UserController) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)
	users, count, err := uc.userRepo.FindAll(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve users",
			"error":   err.Error(),
		})
		return
	}

	results := make([]UserResponse, 0, len(users))
	for i := range users {
		results = append(results, newUserResponse(&users[i], uc.isSubscribed(c, users[i].ID)))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Users retrieved successfully",
		"data":    paginatedData(results, count, page, limit),
	})
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := uc.userRepo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    newUserResponse(user, uc.isSubscribed(c, user.ID)),
	})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /api/users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.userRepo.FindByID(middleware.CurrentUserID(c))
	if err != nil {
		respondRepositoryError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    newUserResponse(user, false),
	})
}

// Subscribe godoc
// @Summary Subscribe to or unsubscribe from an author
// @Tags users
// @Produce json
// @Param id path int true "Author ID"
// @Success 201 {object} map[string]interface{} "Subscribed"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} map[string]interface{} "Self-subscription"
// @Failure 404 {object} map[string]interface{} "Author or subscription not found"
// @Failure 409 {object} map[string]interface{} "Already subscribed"
// @Security BearerAuth
// @Router /api/users/{id}/subscribe [post]
func (uc *UserController) Subscribe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	author, err := uc.userRepo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "Author not found")
		return
	}

	requesterID := middleware.CurrentUserID(c)

	if c.Request.Method == http.MethodDelete {
		if err := uc.relationRepo.Remove(repository.RelationSubscription, requesterID, author.ID); err != nil {
			respondRepositoryError(c, err, "No subscription to remove")
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	if err := uc.relationRepo.Add(repository.RelationSubscription, requesterID, author.ID); err != nil {
		respondRepositoryError(c, err, "Failed to subscribe")
		return
	}

	entry, err := uc.buildSubscriptionEntry(c, author)
	if err != nil {
		respondRepositoryError(c, err, "Failed to load subscription")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Subscribed successfully",
		"data":    entry,
	})
}

func (uc *UserController) buildSubscriptionEntry(c *gin.Context, author *models.User) (SubscriptionResponse, error) {
	recipesLimit := 0
	if raw := c.Query("recipes_limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			recipesLimit = parsed
		}
	}

	recipes, err := uc.recipeRepo.FindByAuthor(author.ID, recipesLimit)
	if err != nil {
		return SubscriptionResponse{}, err
	}
	count, err := uc.recipeRepo.CountByAuthor(author.ID)
	if err != nil {
		return SubscriptionResponse{}, err
	}

	short := make([]RecipeShortResponse, 0, len(recipes))
	for i := range recipes {
		short = append(short, newRecipeShortResponse(&recipes[i]))
	}

	return SubscriptionResponse{
		UserResponse: newUserResponse(author, true),
		Recipes:      short,
		RecipesCount: count,
	}, nil
}

// ListSubscriptions godoc
// @Summary List subscribed authors
// @Description Paginated authors the requester follows, each with up to recipes_limit of their recipes embedded
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param recipes_limit query int false "Max recipes embedded per author"
// @Success 200 {object} map[string]interface{} "Subscriptions retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve subscriptions"
// @Security BearerAuth
// @Router /api/users/subscriptions [get]
func (uc *UserController) ListSubscriptions(c *gin.Context) {
	page, limit := parsePagination(c)
	authors, count, err := uc.userRepo.FindSubscribedAuthors(middleware.CurrentUserID(c), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve subscriptions",
			"error":   err.Error(),
		})
		return
	}

	results := make([]SubscriptionResponse, 0, len(authors))
	for i := range authors {
		entry, err := uc.buildSubscriptionEntry(c, &authors[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to retrieve subscriptions",
				"error":   err.Error(),
			})
			return
		}
		results = append(results, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Subscriptions retrieved successfully",
		"data":    paginatedData(results, count, page, limit),
	})
}
