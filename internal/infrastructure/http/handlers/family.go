package handlers

import (
	"net/http"

	"github.com/mealhaven/api/internal/domain/meal"
)

// FamilyMembers handles GET /family-members: the fixed mapping of household
// role keys to display glyphs.
func FamilyMembers(w http.ResponseWriter, r *http.Request) {
	members := meal.Members()
	response := make(map[string]string, len(members))
	for _, m := range members {
		response[string(m)] = m.Glyph()
	}
	writeJSON(w, http.StatusOK, response)
}
