package newsdata

import (
	"encoding/json"
	"fmt"
)

// StatusSuccess is the envelope status the API returns for a good response.
// Anything else is treated as an API-level failure.
const StatusSuccess = "success"

type Envelope struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Results      []RawArticle `json:"results"`
	NextPage     string       `json:"nextPage"`
}

// RawArticle is the subset of the upstream article payload this service
// consumes. Pointer fields distinguish absent from empty; everything else
// the API sends is ignored.
type RawArticle struct {
	ArticleID  string     `json:"article_id"`
	Title      *string    `json:"title"`
	Creator    StringList `json:"creator"`
	Content    *string    `json:"content"`
	SourceName *string    `json:"source_name"`
	PubDate    *string    `json:"pubDate"`
}

// StringList decodes a JSON value that may be a single string, an array of
// strings, or null. The upstream creator field arrives in all three shapes.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("creator is neither string nor string array: %w", err)
	}
	*l = many
	return nil
}

// APIError is an API-level failure: the call itself succeeded but the
// envelope status was not "success".
type APIError struct {
	Status  string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("newsdata api returned status %q: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("newsdata api returned status %q", e.Status)
}
