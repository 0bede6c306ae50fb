package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"aqarpress/middleware"
	"aqarpress/models"
	"aqarpress/repositories"
	"aqarpress/services"
)

var postsCreatedCounter prometheus.Counter

func init() {
	postsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of blog posts created.",
		},
	)
	prometheus.MustRegister(postsCreatedCounter)
}

type BlogController struct {
	posts *services.PostService
	log   *zap.Logger
}

func NewBlogController(posts *services.PostService, log *zap.Logger) *BlogController {
	return &BlogController{posts: posts, log: log}
}

// POST /posts
func (bc *BlogController) Create(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := bc.posts.CreatePost(c.Request.Context(), &req, middleware.UserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repositories.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			bc.log.Error("post creation failed", zap.String("slug", req.Slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		}
		return
	}

	postsCreatedCounter.Inc()
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Post created successfully"})
}

// GET /posts/:slug
func (bc *BlogController) GetBySlug(c *gin.Context) {
	post, err := bc.posts.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		bc.log.Error("post lookup failed", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// GET /posts?status=&page=&per_page=
func (bc *BlogController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	posts, total, err := bc.posts.ListPosts(c.Request.Context(), c.Query("status"), page, perPage)
	if err != nil {
		bc.log.Error("post listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total, "page": page})
}

// DELETE /posts/:id
func (bc *BlogController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := bc.posts.DeletePost(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		bc.log.Error("post deletion failed", zap.Uint64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
