package telegram

import (
	"fmt"
	"strings"

	"github.com/SheedNova/Film-App/internal/core"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatItalic returns MarkdownV2 italic text.
func FormatItalic(s string) string {
	return "_" + EscapeMdV2(s) + "_"
}

// FormatDetail renders an assembled movie as a MarkdownV2 message body.
// Every dynamic field goes through EscapeMdV2; the labels stay escape-free.
func FormatDetail(d *core.MovieDetail) string {
	var sb strings.Builder

	sb.WriteString(FormatBold(d.Title))
	sb.WriteString("\n")
	if d.Tagline != "" {
		sb.WriteString(FormatItalic(d.Tagline))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "📅 Release: %s\n", EscapeMdV2(d.ReleaseDate))
	fmt.Fprintf(&sb, "⭐ Rating: %s\n", EscapeMdV2(d.Rating))
	fmt.Fprintf(&sb, "⏱ Runtime: %s\n", EscapeMdV2(d.Runtime))
	if len(d.Genres) > 0 {
		fmt.Fprintf(&sb, "🎭 Genres: %s\n", EscapeMdV2(strings.Join(d.Genres, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString(EscapeMdV2(d.Overview))
	sb.WriteString("\n")

	if len(d.Cast) > 0 {
		sb.WriteString("\n")
		sb.WriteString(FormatBold("Top cast"))
		sb.WriteString("\n")
		for _, m := range d.Cast {
			if m.Character != "" {
				fmt.Fprintf(&sb, "• %s as %s\n", EscapeMdV2(m.Name), EscapeMdV2(m.Character))
			} else {
				fmt.Fprintf(&sb, "• %s\n", EscapeMdV2(m.Name))
			}
		}
	}

	if len(d.Similar) > 0 {
		titles := make([]string, 0, len(d.Similar))
		for _, s := range d.Similar {
			titles = append(titles, s.Title)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "🍿 Similar: %s\n", EscapeMdV2(strings.Join(titles, ", ")))
	}

	return sb.String()
}

// FormatFavorites renders the favorites list as a MarkdownV2 message body.
func FormatFavorites(titles []string) string {
	if len(titles) == 0 {
		return EscapeMdV2(noFavoritesMsg)
	}

	var sb strings.Builder
	sb.WriteString(FormatBold("❤️ Favorites"))
	sb.WriteString("\n\n")
	for i, t := range titles {
		fmt.Fprintf(&sb, "%d\\. %s\n", i+1, EscapeMdV2(t))
	}
	return sb.String()
}

// FormatSimilar renders a similar-titles list as a MarkdownV2 message body.
func FormatSimilar(movies []core.MovieSummary) string {
	var sb strings.Builder
	sb.WriteString(FormatBold("🍿 Similar titles"))
	sb.WriteString("\n\n")
	for i, m := range movies {
		fmt.Fprintf(&sb, "%d\\. %s \\(%s\\)\n", i+1, EscapeMdV2(m.Title), EscapeMdV2(fmt.Sprintf("%.1f/10", m.Rating)))
	}
	return sb.String()
}
