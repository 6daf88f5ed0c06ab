package web

import (
	"html/template"
	"net/http"

	"github.com/dfryer1193/blogrecomenda/blog/application"
	"github.com/dfryer1193/blogrecomenda/blog/domain"
	"github.com/dfryer1193/blogrecomenda/internal/config"
	"github.com/dfryer1193/blogrecomenda/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Page is the data every template receives
type Page struct {
	SiteName string
	Title    string
	Path     string
	Nav      NavState

	Posts      []*domain.Post
	Categories []string
	Category   string

	Detail *application.PostDetail
	Body   template.HTML
	Share  []ShareLink
}

type Handler struct {
	store   *application.PostStore
	details *application.PostDetailService
	site    config.SiteConfig
}

func NewHandler(store *application.PostStore, details *application.PostDetailService, site config.SiteConfig) *Handler {
	return &Handler{
		store:   store,
		details: details,
		site:    site,
	}
}

// Register mounts the site's pages on router. The engine must use a TemplateRegistry as its HTMLRender.
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/", h.Home)
	router.GET("/post/:slug", h.PostDetail)
	router.GET("/categorias", h.Categories)
	router.GET("/categorias/:category", h.Category)
	router.GET("/sobre", h.static("about.html", "Sobre"))
	router.GET("/contato", h.static("contact.html", "Contato"))
	router.POST("/search", h.Search)
	router.GET("/healthz", Healthz)
	router.StaticFS("/static", StaticFiles())
}

func (h *Handler) page(c *gin.Context, title string) Page {
	return Page{
		SiteName: h.site.Name,
		Title:    title,
		Path:     c.Request.URL.Path,
		Nav:      ParseNavState(c.Request.URL.Query()),
	}
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	p := h.page(c, h.site.Name)
	p.Posts = h.store.GetLatestPosts(ctx, h.site.LatestCount)
	p.Categories = h.store.GetAllCategories(ctx)

	c.HTML(http.StatusOK, "home.html", p)
}

// PostDetail drives a fresh detail view for the requested slug
func (h *Handler) PostDetail(c *gin.Context) {
	slug := c.Param("slug")
	view := application.NewPostDetailView()

	detail := h.details.Open(c.Request.Context(), view, slug)
	if detail.State != application.DetailFound {
		h.NotFound(c)
		return
	}

	p := h.page(c, detail.Post.FrontMatter.Title)
	p.Detail = &detail
	// detail.HTML has already been through the sanitizer
	p.Body = template.HTML(detail.HTML)
	p.Share = shareLinks(absoluteURL(c), detail.Post.FrontMatter.Title)

	c.HTML(http.StatusOK, "post_detail.html", p)
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", h.page(c, "Post não encontrado"))
}

func (h *Handler) Categories(c *gin.Context) {
	p := h.page(c, "Categorias")
	p.Categories = h.store.GetAllCategories(c.Request.Context())

	c.HTML(http.StatusOK, "category_list.html", p)
}

func (h *Handler) Category(c *gin.Context) {
	category := c.Param("category")

	p := h.page(c, category)
	p.Category = category
	p.Posts = h.store.GetPostsByCategory(c.Request.Context(), category)

	c.HTML(http.StatusOK, "category.html", p)
}

func (h *Handler) static(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, h.page(c, title))
	}
}

// Search closes the search panel and sends the visitor back where they came from.
// The query is only logged.
func (h *Handler) Search(c *gin.Context) {
	query := c.PostForm("q")
	returnTo := safeReturnPath(c.PostForm("return_to"))

	log.Debug().
		Str("requestId", middleware.GetRequestID(c)).
		Str("query", query).
		Msg("Search submitted")

	nav := NavState{MenuOpen: c.PostForm(menuParam) == openValue}.SubmitSearch(query)
	c.Redirect(http.StatusSeeOther, nav.URL(returnTo))
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func absoluteURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
