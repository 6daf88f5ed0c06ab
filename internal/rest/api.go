package rest

import (
	"github.com/dfryer1193/blogrecomenda/blog/application"
	"github.com/gin-gonic/gin"
)

// NewApi registers the read-only JSON API on router
func NewApi(router gin.IRouter, store *application.PostStore) {
	posts := &PostsHandler{store: store}

	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", posts.GetPosts)
		postsV1.GET("/latest", posts.GetLatestPosts)
		postsV1.GET("/categories", posts.GetCategories)
		postsV1.GET("/categories/:category", posts.GetPostsByCategory)
		postsV1.GET("/:slug", posts.GetPost)
	}
}
