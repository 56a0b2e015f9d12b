package es

import (
	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// ArticleDocument is the article shape indexed into Elasticsearch. Nullable
// columns stay nullable; published_at keeps the source's own string form.
type ArticleDocument struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Body        *string `json:"body"`
	Source      *string `json:"source"`
	PublishedAt *string `json:"published_at"`
}

func mapToDocument(article domain.Article) ArticleDocument {
	return ArticleDocument{
		ID:          article.ID,
		Title:       article.Title,
		Author:      article.Author,
		Body:        article.Body,
		Source:      article.Source,
		PublishedAt: article.PublishedAt,
	}
}

func (d ArticleDocument) toArticle() domain.Article {
	return domain.Article{
		ID:          d.ID,
		Title:       d.Title,
		Author:      d.Author,
		Body:        d.Body,
		Source:      d.Source,
		PublishedAt: d.PublishedAt,
	}
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"title":        textPropertyWithKeyword(),
			"author":       textPropertyWithKeyword(),
			"body":         types.NewTextProperty(),
			"source":       textPropertyWithKeyword(),
			"published_at": types.NewKeywordProperty(),
		},
	}
}

func textPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
