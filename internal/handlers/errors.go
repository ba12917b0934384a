package handlers

import (
	"log"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends a JSON error body and logs the underlying cause
// when one is given
func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondWithJSON(w, status, errorResponse{Error: userMsg})
}
