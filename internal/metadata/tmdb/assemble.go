package tmdb

import (
	"fmt"

	"github.com/SheedNova/Film-App/internal/core"
)

// Image sizes served by TMDb's CDN. Posters are shown full-size; stills,
// headshots, and similar-title thumbnails are fine at w500.
const (
	posterSize = "original"
	stillSize  = "w500"
)

// Display caps for the assembled record.
const (
	maxCast      = 10
	maxBackdrops = 9
	maxSimilar   = 8
)

// Fallbacks for fields the API may omit. Substitution happens here, once,
// so frontends never check for missing data themselves.
const (
	missingText     = "N/A"
	missingOverview = "No overview available."
)

// assembleDetail maps a raw API record onto the display model, applying
// defaults, formatting, caps, and image URL construction in one place.
func assembleDetail(d *MovieDetails) *core.MovieDetail {
	overview := d.Overview
	if overview == "" {
		overview = missingOverview
	}

	return &core.MovieDetail{
		ID:          d.ID,
		Title:       orMissing(d.Title),
		ReleaseDate: orMissing(d.ReleaseDate),
		Rating:      fmt.Sprintf("%.1f/10", d.VoteAverage),
		Runtime:     fmt.Sprintf("%d min", d.Runtime),
		Genres:      genreNames(d.Genres),
		Tagline:     d.Tagline,
		Overview:    overview,
		PosterURL:   PosterURL(d.PosterPath, posterSize),
		Backdrops:   stillURLs(d.Images.Backdrops),
		Trailer:     pickTrailer(d.Videos.Results),
		Cast:        castMembers(d.Credits.Cast),
		Similar:     similarSummaries(d.Similar.Results),
	}
}

// summarize maps one raw search result onto the summary model.
func summarize(m Movie) core.MovieSummary {
	return core.MovieSummary{
		ID:        m.ID,
		Title:     m.Title,
		PosterURL: PosterURL(m.PosterPath, stillSize),
		Rating:    m.VoteAverage,
	}
}

// pickTrailer returns the first YouTube-hosted trailer, or nil.
func pickTrailer(videos []Video) *core.Trailer {
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			return &core.Trailer{Site: v.Site, Key: v.Key}
		}
	}
	return nil
}

// stillURLs converts backdrop entries to full URLs, keeping API order and
// at most maxBackdrops of them.
func stillURLs(backdrops []Image) []string {
	urls := make([]string, 0, min(len(backdrops), maxBackdrops))
	for _, b := range backdrops {
		if len(urls) == maxBackdrops {
			break
		}
		if b.FilePath == "" {
			continue
		}
		urls = append(urls, PosterURL(b.FilePath, stillSize))
	}
	return urls
}

// castMembers converts cast credits to display entries, keeping billing
// order and at most maxCast of them.
func castMembers(cast []CastCredit) []core.CastMember {
	members := make([]core.CastMember, 0, min(len(cast), maxCast))
	for _, c := range cast {
		if len(members) == maxCast {
			break
		}
		members = append(members, core.CastMember{
			Name:       c.Name,
			Character:  c.Character,
			ProfileURL: PosterURL(c.ProfilePath, stillSize),
		})
	}
	return members
}

// similarSummaries converts similar-title entries to summaries, keeping API
// order and at most maxSimilar of them.
func similarSummaries(movies []Movie) []core.MovieSummary {
	summaries := make([]core.MovieSummary, 0, min(len(movies), maxSimilar))
	for _, m := range movies {
		if len(summaries) == maxSimilar {
			break
		}
		summaries = append(summaries, summarize(m))
	}
	return summaries
}

func genreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func orMissing(s string) string {
	if s == "" {
		return missingText
	}
	return s
}
