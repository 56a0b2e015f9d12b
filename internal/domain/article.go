package domain

// Language codes accepted by the upstream news API.
const (
	LanguageEnglish = "en"
	LanguageDefault = LanguageEnglish
)

// Article is one synced news article. The id is supplied by the source and
// uniquely identifies the row; every other column is nullable because the
// feed genuinely omits fields. Re-syncing an id overwrites all columns with
// the latest fetched values.
type Article struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Body        *string `json:"body"`
	Source      *string `json:"source"`
	PublishedAt *string `json:"published_at"`
}
