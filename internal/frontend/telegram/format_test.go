package telegram

import (
	"strings"
	"testing"

	"github.com/SheedNova/Film-App/internal/core"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "dots", in: "hello.", want: "hello\\."},
		{name: "exclamation", in: "Done!", want: "Done\\!"},
		{name: "parentheses", in: "(2024)", want: "\\(2024\\)"},
		{name: "brackets", in: "[link]", want: "\\[link\\]"},
		{name: "underscores", in: "foo_bar", want: "foo\\_bar"},
		{name: "stars", in: "*bold*", want: "\\*bold\\*"},
		{name: "mixed", in: "Dune (2021) - 8.0*", want: "Dune \\(2021\\) \\- 8\\.0\\*"},
		{name: "all specials", in: "_*[]()~`>#+-=|{}.!", want: "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMdV2(tt.in)
			if got != tt.want {
				t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBold(t *testing.T) {
	got := FormatBold("Dune")
	want := "*Dune*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Dune", got, want)
	}

	got = FormatBold("Dune (2021)")
	want = "*Dune \\(2021\\)*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Dune (2021)", got, want)
	}
}

func TestFormatItalic(t *testing.T) {
	got := FormatItalic("description")
	want := "_description_"
	if got != want {
		t.Errorf("FormatItalic(%q) = %q, want %q", "description", got, want)
	}
}

func TestFormatDetail(t *testing.T) {
	detail := &core.MovieDetail{
		ID:          313369,
		Title:       "La La Land",
		ReleaseDate: "2016-12-09",
		Rating:      "7.9/10",
		Runtime:     "128 min",
		Genres:      []string{"Comedy", "Drama"},
		Tagline:     "Here's to the fools who dream.",
		Overview:    "Mia serves lattes to movie stars.",
		Cast: []core.CastMember{
			{Name: "Ryan Gosling", Character: "Sebastian Wilder"},
			{Name: "Emma Stone", Character: ""},
		},
		Similar: []core.MovieSummary{{ID: 1, Title: "Whiplash"}},
	}

	got := FormatDetail(detail)

	for _, want := range []string{
		"*La La Land*",
		"_Here's to the fools who dream\\._",
		"Release: 2016\\-12\\-09",
		"Rating: 7\\.9/10",
		"Runtime: 128 min",
		"Genres: Comedy, Drama",
		"Mia serves lattes to movie stars\\.",
		"• Ryan Gosling as Sebastian Wilder",
		"• Emma Stone\n",
		"Similar: Whiplash",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("detail message missing %q:\n%s", want, got)
		}
	}
}

func TestFormatDetail_NoTaglineNoCast(t *testing.T) {
	detail := &core.MovieDetail{
		Title:       "Bare",
		ReleaseDate: "N/A",
		Rating:      "0.0/10",
		Runtime:     "0 min",
		Overview:    "No overview available.",
	}

	got := FormatDetail(detail)

	if strings.Contains(got, "_") {
		t.Errorf("expected no italic tagline, got:\n%s", got)
	}
	if strings.Contains(got, "Top cast") {
		t.Errorf("expected no cast section, got:\n%s", got)
	}
	if strings.Contains(got, "Genres:") {
		t.Errorf("expected no genres line, got:\n%s", got)
	}
	if !strings.Contains(got, "No overview available\\.") {
		t.Errorf("expected overview default, got:\n%s", got)
	}
}

func TestFormatFavorites(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := FormatFavorites(nil)
		if got != "No favorites yet\\." {
			t.Errorf("unexpected empty-list message: %q", got)
		}
	})

	t.Run("numbered", func(t *testing.T) {
		got := FormatFavorites([]string{"La La Land", "Whiplash"})
		if !strings.Contains(got, "1\\. La La Land") {
			t.Errorf("missing first entry:\n%s", got)
		}
		if !strings.Contains(got, "2\\. Whiplash") {
			t.Errorf("missing second entry:\n%s", got)
		}
	})
}

func TestFormatSimilar(t *testing.T) {
	got := FormatSimilar([]core.MovieSummary{
		{ID: 1, Title: "Whiplash", Rating: 8.4},
		{ID: 2, Title: "Moonlight", Rating: 7.9},
	})
	if !strings.Contains(got, "1\\. Whiplash \\(8\\.4/10\\)") {
		t.Errorf("missing first entry:\n%s", got)
	}
	if !strings.Contains(got, "2\\. Moonlight \\(7\\.9/10\\)") {
		t.Errorf("missing second entry:\n%s", got)
	}
}
