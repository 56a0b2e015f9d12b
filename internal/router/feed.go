package router

import (
	"net/http"

	"github.com/dkovacevic/newsdata-sync/internal/apperr"
	"github.com/dkovacevic/newsdata-sync/internal/storage"
	"github.com/dkovacevic/newsdata-sync/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// FeedRouter serves the read-only feed over synced articles.
type FeedRouter struct {
	reader storage.Reader
}

func NewFeedRouter(reader storage.Reader) *FeedRouter {
	return &FeedRouter{reader: reader}
}

func (fr *FeedRouter) Register(e *echo.Echo) {
	e.GET("/articles", fr.listArticles)
	e.GET("/articles/:id", fr.getArticle)
}

func (fr *FeedRouter) listArticles(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	result, err := fr.reader.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (fr *FeedRouter) getArticle(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperr.NewValidation("article id is required")
	}

	article, err := fr.reader.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, article)
}
