package handlers

import (
	"fmt"
	"net/http"

	"scoutlink-server/internal/shared/config"
)

// redirectWithError sends the browser back to the frontend with error
// parameters it can surface as a notice.
func redirectWithError(w http.ResponseWriter, r *http.Request, errorType, message string) {
	cfg := config.GlobalConfig
	errorURL := fmt.Sprintf("%s/auth/error?error=%s&message=%s",
		cfg.Frontend.URL, errorType, message)

	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}
