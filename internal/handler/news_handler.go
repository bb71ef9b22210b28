package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"newsroom/internal/model"
	"newsroom/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsHandler handles news post requests
type NewsHandler struct {
	service service.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(s service.NewsService) *NewsHandler {
	return &NewsHandler{service: s}
}

func (h *NewsHandler) CreateNewsPost(c *gin.Context) {
	var req model.CreateNewsPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, category, and content are required: " + err.Error()})
		return
	}

	post, err := h.service.CreateNewsPost(c.Request.Context(), req)
	if err != nil {
		log.Printf("Error creating news post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "News created successfully",
		"post":    post,
	})
}

func (h *NewsHandler) GetNewsPosts(c *gin.Context) {
	posts, err := h.service.GetAllNewsPosts(c.Request.Context())
	if err != nil {
		log.Printf("Error getting news posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve news posts"})
		return
	}
	if posts == nil {
		posts = []model.NewsPost{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *NewsHandler) GetNewsPostByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news post ID"})
		return
	}

	post, err := h.service.GetNewsPostByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNewsPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting news post by ID: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve news post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// RegisterNewsRoutes registers news routes
func (h *NewsHandler) RegisterNewsRoutes(rg *gin.RouterGroup) {
	rg.POST("/addnews", h.CreateNewsPost)
	rg.GET("/getnewspost", h.GetNewsPosts)
	rg.GET("/getnews/:id", h.GetNewsPostByID)
}
