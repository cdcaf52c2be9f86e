package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SheedNova/Film-App/internal/board"
	"github.com/SheedNova/Film-App/internal/metadata/tmdb"
)

const (
	unauthorizedMsg = "Sorry, you are not authorized to use this bot."
	errorMsg        = "An error occurred while processing your request. Please try again."
	noResultsMsg    = "No results found. Try a different title!"
	resetMsg        = "Board cleared. Send a movie title to start over."
	welcomeMsg      = "Welcome to Filmboard! Send a movie title and I'll pull up the poster, stills, cast, and similar picks. Use the buttons to build your favorites list."
	searchFirstMsg  = "Search for a movie first - send me a title."
	noTrailerMsg    = "No trailer available."
	noStillsMsg     = "No stills available."
	noSimilarMsg    = "No similar titles found."
	noFavoritesMsg  = "No favorites yet."

	// Callback actions. The favorite/trailer/stills/similar buttons act on
	// whatever movie the chat currently has on display.
	cbFavorite     = "fav"
	cbTrailer      = "trailer"
	cbStills       = "stills"
	cbSimilar      = "similar"
	cbRemovePrefix = "del:" // followed by a (possibly capped) favorite title

	maxButtonLabel   = 30 // max characters in inline keyboard button label
	maxCallbackTitle = 60 // Telegram caps callback data at 64 bytes
)

// handleMessage processes an incoming text message. Anything that is not a
// command is treated as a search query.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.logger.Debug("received message",
		slog.Int64("user_id", userID),
	)

	if !b.sessions.isAllowed(userID) {
		b.sendText(chatID, unauthorizedMsg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch text {
	case "/start":
		b.sendText(chatID, welcomeMsg)
		return
	case "/reset":
		b.sessions.reset(chatID)
		b.sendText(chatID, resetMsg)
		return
	case "/favorites":
		b.sendFavorites(chatID)
		return
	}

	b.search(ctx, chatID, text)
}

// search runs the full search flow: first match, combined detail fetch,
// board update, reply. A failed search leaves the board as it was; an empty
// result clears the displayed movie but never touches favorites.
func (b *Bot) search(ctx context.Context, chatID int64, query string) {
	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	b.api.Send(typing) //nolint:errcheck // best-effort typing indicator

	summary, err := b.source.SearchMovie(ctx, query)
	if err != nil {
		if errors.Is(err, tmdb.ErrNoResults) {
			b.sessions.update(chatID, func(st board.State) board.State { return st.Cleared() })
			b.sendText(chatID, noResultsMsg)
			return
		}
		b.logger.Error("search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}

	detail, err := b.source.MovieDetail(ctx, summary.ID)
	if err != nil {
		b.logger.Error("detail fetch failed",
			slog.Int("movie_id", summary.ID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}

	st := b.sessions.update(chatID, func(st board.State) board.State { return st.WithMovie(detail) })

	if detail.PosterURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(detail.PosterURL))
		photo.Caption = detail.Title
		if _, err := b.api.Send(photo); err != nil {
			b.logger.Debug("failed to send poster",
				slog.String("url", detail.PosterURL),
				slog.String("error", err.Error()),
			)
		}
	}

	kb := b.movieKeyboard(st.Favorites.Has(detail.Title))
	b.sendMarkdown(chatID, FormatDetail(detail), &kb)
}

// handleCallback processes inline keyboard callback queries.
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	b.logger.Debug("received callback",
		slog.Int64("user_id", userID),
		slog.String("data", cq.Data),
	)

	// Acknowledge the callback immediately.
	callback := tgbotapi.NewCallback(cq.ID, "")
	b.api.Send(callback) //nolint:errcheck // best-effort ack

	if !b.sessions.isAllowed(userID) {
		return
	}

	if title, ok := strings.CutPrefix(cq.Data, cbRemovePrefix); ok {
		b.removeFavorite(chatID, cq.Message.MessageID, title)
		return
	}

	switch cq.Data {
	case cbFavorite:
		b.toggleFavorite(chatID, cq.Message.MessageID)
	case cbTrailer:
		b.sendTrailer(ctx, chatID)
	case cbStills:
		b.sendStills(ctx, chatID)
	case cbSimilar:
		b.sendSimilar(ctx, chatID)
	}
}

// toggleFavorite flips the displayed movie in the favorites set and updates
// the button row under the detail message to match.
func (b *Bot) toggleFavorite(chatID int64, messageID int) {
	st := b.sessions.state(chatID)
	if st.Movie == nil {
		b.sendText(chatID, searchFirstMsg)
		return
	}

	title := st.Movie.Title
	added := !st.Favorites.Has(title)
	b.sessions.update(chatID, func(st board.State) board.State { return st.ToggleFavorite(title) })

	kb := b.movieKeyboard(added)
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, kb)
	b.api.Send(edit) //nolint:errcheck // keyboard refresh is best-effort

	if added {
		b.sendText(chatID, fmt.Sprintf("Added %s to favorites!", title))
	} else {
		b.sendText(chatID, fmt.Sprintf("Removed %s from favorites!", title))
	}
}

// removeFavorite drops one favorite and rewrites the favorites message in
// place. Callback data may carry a capped title, so match by prefix against
// the stored ones.
func (b *Bot) removeFavorite(chatID int64, messageID int, capped string) {
	st := b.sessions.state(chatID)
	title, ok := resolveFavorite(st.Favorites.Titles(), capped)
	if !ok {
		// Already gone; removal is idempotent, just refresh the list.
		b.editFavorites(chatID, messageID, st.Favorites.Titles())
		return
	}

	st = b.sessions.update(chatID, func(st board.State) board.State { return st.RemoveFavorite(title) })
	b.editFavorites(chatID, messageID, st.Favorites.Titles())
	b.sendText(chatID, fmt.Sprintf("Removed %s from favorites!", title))
}

// sendTrailer looks the trailer up fresh and replies with its watch URL.
func (b *Bot) sendTrailer(ctx context.Context, chatID int64) {
	st := b.sessions.state(chatID)
	if st.Movie == nil {
		b.sendText(chatID, searchFirstMsg)
		return
	}

	trailer, err := b.source.Videos(ctx, st.Movie.ID)
	if err != nil {
		b.logger.Error("trailer fetch failed",
			slog.Int("movie_id", st.Movie.ID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}
	if trailer == nil {
		b.sendText(chatID, noTrailerMsg)
		return
	}

	b.sendText(chatID, trailer.WatchURL())
}

// sendStills fetches the backdrop stills fresh and sends them as one album.
func (b *Bot) sendStills(ctx context.Context, chatID int64) {
	st := b.sessions.state(chatID)
	if st.Movie == nil {
		b.sendText(chatID, searchFirstMsg)
		return
	}

	urls, err := b.source.Images(ctx, st.Movie.ID)
	if err != nil {
		b.logger.Error("stills fetch failed",
			slog.Int("movie_id", st.Movie.ID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}
	if len(urls) == 0 {
		b.sendText(chatID, noStillsMsg)
		return
	}

	// A media group needs at least two entries.
	if len(urls) == 1 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(urls[0]))
		b.api.Send(photo) //nolint:errcheck // telegram fetches the URL itself
		return
	}

	media := make([]any, 0, len(urls))
	for _, u := range urls {
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FileURL(u)))
	}
	group := tgbotapi.NewMediaGroup(chatID, media)
	if _, err := b.api.SendMediaGroup(group); err != nil {
		b.logger.Debug("failed to send stills",
			slog.Int("count", len(urls)),
			slog.String("error", err.Error()),
		)
	}
}

// sendSimilar fetches similar titles fresh and replies with a short list.
func (b *Bot) sendSimilar(ctx context.Context, chatID int64) {
	st := b.sessions.state(chatID)
	if st.Movie == nil {
		b.sendText(chatID, searchFirstMsg)
		return
	}

	movies, err := b.source.Similar(ctx, st.Movie.ID)
	if err != nil {
		b.logger.Error("similar fetch failed",
			slog.Int("movie_id", st.Movie.ID),
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, errorMsg)
		return
	}
	if len(movies) == 0 {
		b.sendText(chatID, noSimilarMsg)
		return
	}

	b.sendMarkdown(chatID, FormatSimilar(movies), nil)
}

// sendFavorites sends the favorites list with one removal button per title.
func (b *Bot) sendFavorites(chatID int64) {
	st := b.sessions.state(chatID)
	titles := st.Favorites.Titles()

	msg := tgbotapi.NewMessage(chatID, FormatFavorites(titles))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if kb := favoritesKeyboard(titles); kb != nil {
		msg.ReplyMarkup = kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send favorites, retrying plain",
			slog.String("error", err.Error()),
		)
		b.sendText(chatID, strings.Join(titles, "\n"))
	}
}

// editFavorites rewrites an existing favorites message after a removal.
func (b *Bot) editFavorites(chatID int64, messageID int, titles []string) {
	text := FormatFavorites(titles)
	kb := favoritesKeyboard(titles)
	if kb == nil {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
		edit.ParseMode = tgbotapi.ModeMarkdownV2
		b.api.Send(edit) //nolint:errcheck // list refresh is best-effort
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *kb)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	b.api.Send(edit) //nolint:errcheck
}

// sendMarkdown sends a MarkdownV2 message, falling back to plain text when
// Telegram rejects the markup.
func (b *Bot) sendMarkdown(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send markdown, retrying plain",
			slog.String("error", err.Error()),
		)
		plain := tgbotapi.NewMessage(chatID, text)
		if kb != nil {
			plain.ReplyMarkup = *kb
		}
		if _, err := b.api.Send(plain); err != nil {
			b.logger.Error("failed to send message",
				slog.Int64("chat_id", chatID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// sendText sends a plain text message (no parse mode).
func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("failed to send message",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}

// movieKeyboard builds the button rows shown under a movie detail message.
func (b *Bot) movieKeyboard(isFavorite bool) tgbotapi.InlineKeyboardMarkup {
	favLabel := "❤️ Add to favorites"
	if isFavorite {
		favLabel = "💔 Remove from favorites"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favLabel, cbFavorite),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Trailer", cbTrailer),
			tgbotapi.NewInlineKeyboardButtonData("🎞 Stills", cbStills),
			tgbotapi.NewInlineKeyboardButtonData("🍿 Similar", cbSimilar),
		),
	)
}

// favoritesKeyboard builds one removal button per favorite, or nil when the
// list is empty.
func favoritesKeyboard(titles []string) *tgbotapi.InlineKeyboardMarkup {
	if len(titles) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(titles))
	for _, t := range titles {
		label := t
		if len(label) > maxButtonLabel {
			label = label[:maxButtonLabel] + "…"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+label, cbRemovePrefix+callbackTitle(t)),
		))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// callbackTitle caps a title so the callback data stays under Telegram's
// 64-byte limit, trimming back to a rune boundary.
func callbackTitle(title string) string {
	if len(title) <= maxCallbackTitle {
		return title
	}
	capped := title[:maxCallbackTitle]
	for len(capped) > 0 && !utf8.ValidString(capped) {
		capped = capped[:len(capped)-1]
	}
	return capped
}

// resolveFavorite finds the stored title a (possibly capped) callback title
// refers to.
func resolveFavorite(titles []string, capped string) (string, bool) {
	for _, t := range titles {
		if t == capped || strings.HasPrefix(t, capped) {
			return t, true
		}
	}
	return "", false
}
