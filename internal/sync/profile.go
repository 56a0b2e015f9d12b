package sync

import (
	"fmt"
	"io"

	"github.com/dkovacevic/newsdata-sync/internal/domain"
	"github.com/dkovacevic/newsdata-sync/internal/newsdata"
	"gopkg.in/yaml.v3"
)

const ProfileKind = "SyncProfile"

// Profile narrows what a sync run fetches. Query and Language map straight
// onto the upstream call; both are optional.
type Profile struct {
	Kind     string   `yaml:"kind"`
	Version  string   `yaml:"version"`
	Metadata Metadata `yaml:"metadata"`
	Query    string   `yaml:"query"`
	Language string   `yaml:"language"`
}

type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func DefaultProfile() *Profile {
	return &Profile{
		Kind:     ProfileKind,
		Version:  "v1",
		Language: domain.LanguageDefault,
	}
}

func (p *Profile) Validate() error {
	if p.Kind != ProfileKind {
		return fmt.Errorf("kind must be %q, got %q", ProfileKind, p.Kind)
	}
	if p.Version == "" {
		return fmt.Errorf("version is required")
	}
	return nil
}

func (p *Profile) Params() newsdata.Params {
	return newsdata.Params{
		Query:    p.Query,
		Language: p.Language,
	}
}

type ProfileLoader struct {
	reader io.Reader
}

func NewProfileLoader(reader io.Reader) *ProfileLoader {
	return &ProfileLoader{reader: reader}
}

func (pl *ProfileLoader) Load(validate bool) (*Profile, error) {
	decoder := yaml.NewDecoder(pl.reader)
	var profile Profile
	if err := decoder.Decode(&profile); err != nil {
		return nil, err
	}
	if validate {
		if err := profile.Validate(); err != nil {
			return nil, err
		}
	}
	return &profile, nil
}
