package auth

import (
	"errors"
	"kanboard/dto"
	"kanboard/middleware"
	"kanboard/model"
	"kanboard/services"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/auth")
	{
		routes.POST("/register", func(c *gin.Context) {
			Register(c, db)
		})
		routes.POST("/login", func(c *gin.Context) {
			Login(c, db)
		})
		routes.GET("/profile", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
			Profile(c, db)
		})
	}
}

func CreateAccessToken(user *model.User) (string, error) {
	claims := &model.AccessClaims{
		UserID:   uint(user.UserID),
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "kanboard",
			Subject:   strconv.Itoa(user.UserID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}

func publicUser(user *model.User) gin.H {
	return gin.H{
		"id":       user.UserID,
		"username": user.Username,
		"email":    user.Email,
	}
}

func Register(c *gin.Context, db *gorm.DB) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing model.User
	err := db.Where("username = ? OR email = ?", request.Username, request.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := model.User{
		Username:       request.Username,
		Email:          request.Email,
		HashedPassword: string(hashedPassword),
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	accessToken, err := CreateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         publicUser(&user),
		"access_token": accessToken,
	})
}

func Login(c *gin.Context, db *gorm.DB) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Exactly one identifier: username or email, never both.
	if (request.Username == "") == (request.Email == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide either username or email"})
		return
	}

	var user model.User
	var result *gorm.DB
	if request.Username != "" {
		result = db.Where("username = ?", request.Username).First(&user)
	} else {
		result = db.Where("email = ?", request.Email).First(&user)
	}
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := CreateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         publicUser(&user),
		"access_token": accessToken,
	})
}

func Profile(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(uint)
	user, err := services.GetUserByID(db, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, publicUser(user))
}
