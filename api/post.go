package api

import "github.com/dfryer1193/blogrecomenda/blog/domain"

type FrontMatter struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	AffiliateLink string   `json:"affiliateLink"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
	Image         string   `json:"image"`
	Date          string   `json:"date"`
}

type Post struct {
	FrontMatter FrontMatter `json:"frontmatter"`
	Content     string      `json:"content"`
}

type Error struct {
	Error string `json:"error"`
}

func FromDomain(p *domain.Post) Post {
	tags := p.FrontMatter.Tags
	if tags == nil {
		tags = []string{}
	}

	return Post{
		FrontMatter: FrontMatter{
			Title:         p.FrontMatter.Title,
			Slug:          p.FrontMatter.Slug,
			Description:   p.FrontMatter.Description,
			Price:         p.FrontMatter.Price,
			AffiliateLink: p.FrontMatter.AffiliateLink,
			Tags:          tags,
			Category:      p.FrontMatter.Category,
			Image:         p.FrontMatter.Image,
			Date:          p.FrontMatter.Date,
		},
		Content: p.Content,
	}
}

func FromDomainList(posts []*domain.Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, FromDomain(p))
	}
	return out
}
