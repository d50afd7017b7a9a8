package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "gopkg.in/telegram-bot-api.v4"

	"github.com/johnaaiton-art/sambo-habit-tracker/internal/service"
)

// ReplySender sends a reply back over Telegram. *tgbotapi.BotAPI satisfies it.
type ReplySender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type webhookHandler struct {
	dispatcher *service.Dispatcher
	bot        ReplySender
}

func NewWebhookHandler(dispatcher *service.Dispatcher, bot ReplySender) *webhookHandler {
	return &webhookHandler{
		dispatcher: dispatcher,
		bot:        bot,
	}
}

// Receive handles one Telegram webhook delivery. It always answers 200 for
// well-formed updates, including ones the bot ignores, so Telegram does not
// redeliver them; domain failures travel back as normal reply messages.
func (h *webhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	err := json.NewDecoder(r.Body).Decode(&update)
	if err != nil {
		slog.Warn("webhook update decode failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid update"})
		return
	}

	if update.Message == nil || update.Message.From == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	callerID := strconv.Itoa(update.Message.From.ID)
	reply := h.replyFor(callerID, update.Message.Text)

	if reply != "" {
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
		_, err = h.bot.Send(msg)
		if err != nil {
			slog.Error("failed to send reply", "error", err, "chat_id", update.Message.Chat.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// replyFor maps a message to a reply: /start and /help show the command
// overview, /1../5 record a numbered activity, everything else goes through
// free-text dispatch.
func (h *webhookHandler) replyFor(callerID, text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return h.dispatcher.Dispatch(callerID, text)
	}

	command := strings.ToLower(strings.Fields(text)[0][1:])
	// Group-style suffix as in "/help@SamboHabitBot"
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	switch command {
	case "start", "help":
		return h.dispatcher.Help()
	default:
		habitID, err := strconv.Atoi(command)
		if err == nil {
			return h.dispatcher.DispatchActivity(callerID, habitID)
		}
		return h.dispatcher.Dispatch(callerID, text)
	}
}
