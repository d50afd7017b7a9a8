package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookSecret rejects webhook deliveries whose secret token header does not
// match the configured secret. With an empty secret the check is disabled.
// The secret is set on the Telegram side via setWebhook's secret_token.
func WebhookSecret(secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if secret == "" {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(secretTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				slog.Warn("webhook secret token mismatch", "remote_addr", r.RemoteAddr)
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next(w, r)
		}
	}
}
