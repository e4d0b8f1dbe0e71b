package handler

import (
	"net/http"

	"github.com/tgrante/dicegame-go/internal/api/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
