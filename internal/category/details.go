package category

import (
	"encoding/json"
	"fmt"
	"math"
)

// Details is the typed, category-specific part of an article's metadata.
type Details interface {
	Category() Category
}

type FootballMatch struct {
	Teams       string `json:"teams" yaml:"teams"`
	Competition string `json:"competition" yaml:"competition"`
	MatchDate   string `json:"matchDate,omitempty" yaml:"matchDate,omitempty"`
	Result      string `json:"result,omitempty" yaml:"result,omitempty"`
}

type MotoGPRace struct {
	GPName   string `json:"gpName" yaml:"gpName"`
	Circuit  string `json:"circuit" yaml:"circuit"`
	Class    string `json:"category,omitempty" yaml:"category,omitempty"`
	RaceDate string `json:"raceDate,omitempty" yaml:"raceDate,omitempty"`
}

type Game struct {
	Platform    string  `json:"platform" yaml:"platform"`
	Developer   string  `json:"developer" yaml:"developer"`
	ReleaseYear int     `json:"releaseYear,omitempty" yaml:"releaseYear,omitempty"`
	HoursPlayed float64 `json:"hoursPlayed,omitempty" yaml:"hoursPlayed,omitempty"`
	Platinumed  bool    `json:"platinumed" yaml:"platinumed"`
	Rating      float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

type Movie struct {
	Director     string  `json:"director" yaml:"director"`
	ReleaseYear  int     `json:"releaseYear,omitempty" yaml:"releaseYear,omitempty"`
	Genre        string  `json:"genre,omitempty" yaml:"genre,omitempty"`
	Runtime      int     `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	WhereWatched string  `json:"whereWatched,omitempty" yaml:"whereWatched,omitempty"`
	Rating       float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

type TVShow struct {
	Creator  string  `json:"creator" yaml:"creator"`
	Seasons  int     `json:"seasons,omitempty" yaml:"seasons,omitempty"`
	Episodes int     `json:"episodes,omitempty" yaml:"episodes,omitempty"`
	Platform string  `json:"platform,omitempty" yaml:"platform,omitempty"`
	Status   string  `json:"status,omitempty" yaml:"status,omitempty"`
	Rating   float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
}

type Book struct {
	Author      string  `json:"author" yaml:"author"`
	Genre       string  `json:"genre,omitempty" yaml:"genre,omitempty"`
	Pages       int     `json:"pages,omitempty" yaml:"pages,omitempty"`
	DateRead    string  `json:"dateRead,omitempty" yaml:"dateRead,omitempty"`
	Rating      float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	CurrentPage int     `json:"currentPage,omitempty" yaml:"currentPage,omitempty"`
}

type Trip struct {
	Destination   string `json:"destination" yaml:"destination"`
	Country       string `json:"country,omitempty" yaml:"country,omitempty"`
	TripStartDate string `json:"tripStartDate,omitempty" yaml:"tripStartDate,omitempty"`
	TripEndDate   string `json:"tripEndDate,omitempty" yaml:"tripEndDate,omitempty"`
	BudgetLevel   string `json:"budgetLevel,omitempty" yaml:"budgetLevel,omitempty"`
	Region        string `json:"region,omitempty" yaml:"region,omitempty"`
}

func (FootballMatch) Category() Category { return Football }
func (MotoGPRace) Category() Category    { return MotoGP }
func (Game) Category() Category          { return Gaming }
func (Movie) Category() Category         { return Movies }
func (TVShow) Category() Category        { return TVShows }
func (Book) Category() Category          { return Books }
func (Trip) Category() Category          { return Travel }

// ReadingProgress reports how far into the book the reader is, as a rounded
// percentage. It is false until both the page count and current page are known.
func (b Book) ReadingProgress() (int, bool) {
	if b.Pages <= 0 || b.CurrentPage <= 0 {
		return 0, false
	}
	return int(math.Round(float64(b.CurrentPage) / float64(b.Pages) * 100)), true
}

// DecodeDetails decodes the category-specific subset of fields into the
// typed record for c. Fields are not validated; run Validate or Resolve first
// when strictness matters.
func DecodeDetails(c Category, fields map[string]any) (Details, error) {
	var target Details
	switch c {
	case Football:
		target = &FootballMatch{}
	case MotoGP:
		target = &MotoGPRace{}
	case Gaming:
		target = &Game{}
	case Movies:
		target = &Movie{}
	case TVShows:
		target = &TVShow{}
	case Books:
		target = &Book{}
	case Travel:
		target = &Trip{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("category: encode %s details: %w", c, err)
	}
	if err := json.Unmarshal(encoded, target); err != nil {
		return nil, fmt.Errorf("category: decode %s details: %w", c, err)
	}
	return deref(target), nil
}

func deref(d Details) Details {
	switch v := d.(type) {
	case *FootballMatch:
		return *v
	case *MotoGPRace:
		return *v
	case *Game:
		return *v
	case *Movie:
		return *v
	case *TVShow:
		return *v
	case *Book:
		return *v
	case *Trip:
		return *v
	default:
		return d
	}
}
