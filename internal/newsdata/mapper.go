package newsdata

import (
	"strings"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
)

// MapArticle renames the raw payload fields onto the persisted record.
// Pure: a missing field yields nil, never an error. Multiple creators are
// flattened into one comma-separated author string, preserving order.
func MapArticle(raw RawArticle) domain.Article {
	return domain.Article{
		ID:          raw.ArticleID,
		Title:       raw.Title,
		Author:      joinCreators(raw.Creator),
		Body:        raw.Content,
		Source:      raw.SourceName,
		PublishedAt: raw.PubDate,
	}
}

// MapArticles normalizes a whole fetch result.
func MapArticles(raws []RawArticle) []domain.Article {
	articles := make([]domain.Article, 0, len(raws))
	for _, raw := range raws {
		articles = append(articles, MapArticle(raw))
	}
	return articles
}

func joinCreators(creators StringList) *string {
	if creators == nil {
		return nil
	}
	joined := strings.Join(creators, ", ")
	return &joined
}
