package rest

import (
	"net/http"
	"strconv"

	"github.com/dfryer1193/blogrecomenda/api"
	"github.com/dfryer1193/blogrecomenda/blog/application"
	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/gin-gonic/gin"
)

const defaultLatestCount = 6

type PostsHandler struct {
	store *application.PostStore
}

func (h *PostsHandler) GetPosts(c *gin.Context) {
	c.JSON(http.StatusOK, api.FromDomainList(h.store.GetAllPosts(c.Request.Context())))
}

func (h *PostsHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, ok := h.store.GetPostBySlug(c.Request.Context(), slug)
	if !ok {
		c.JSON(http.StatusNotFound, api.Error{Error: domain.ErrPostNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, api.FromDomain(post))
}

func (h *PostsHandler) GetLatestPosts(c *gin.Context) {
	count := defaultLatestCount
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, api.Error{Error: "count must be a non-negative integer"})
			return
		}
		count = n
	}

	c.JSON(http.StatusOK, api.FromDomainList(h.store.GetLatestPosts(c.Request.Context(), count)))
}

func (h *PostsHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllCategories(c.Request.Context()))
}

func (h *PostsHandler) GetPostsByCategory(c *gin.Context) {
	category := c.Param("category")
	c.JSON(http.StatusOK, api.FromDomainList(h.store.GetPostsByCategory(c.Request.Context(), category)))
}
