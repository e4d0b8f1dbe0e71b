package response

import (
	"encoding/json"
	"net/http"

	"github.com/tgrante/dicegame-go/internal/api/apierr"
)

// JSON writes a JSON response body with the given status
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error writes the mapped error body for err. Errors go only to the caller,
// never into the room broadcast.
func Error(w http.ResponseWriter, err error) {
	status, body := apierr.Resolve(err)
	JSON(w, status, body)
}
