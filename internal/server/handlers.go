package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/freejk/campscope/internal/utils"
	"github.com/freejk/campscope/pkg/records"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Log.Error("Failed to encode response: ", err)
	}
}

func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	d := s.currentDataset()
	writeJSON(w, http.StatusOK, map[string]string{
		"name":             d.Campaign.Name,
		"description_html": d.Campaign.DescriptionHTML,
		"description_text": utils.HTMLText(d.Campaign.DescriptionHTML),
		"contact_template": d.Campaign.ContactTemplate,
	})
}

func (s *Server) handleMarkets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentDataset().Markets)
}

type recordView struct {
	records.Record
	Contacted   bool  `json:"contacted"`
	ContactedAt int64 `json:"contacted_at,omitempty"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	market := r.URL.Query().Get("market")
	status := r.URL.Query().Get("contacted")
	if !records.ValidContactFilter(status) {
		http.Error(w, "invalid contacted filter", http.StatusBadRequest)
		return
	}

	contactedMap, err := s.Store.ContactedMap(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	matched := s.currentDataset().Filter(market, records.ContactFilter(status), func(id string) bool {
		_, ok := contactedMap[id]
		return ok
	})

	views := make([]recordView, 0, len(matched))
	for _, rec := range matched {
		at, ok := contactedMap[rec.Identifier]
		views = append(views, recordView{Record: rec, Contacted: ok, ContactedAt: at})
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	if identifier == "" {
		http.Error(w, "identifier parameter is required", http.StatusBadRequest)
		return
	}

	d := s.currentDataset()
	if d.Campaign.ContactTemplate == "" {
		http.Error(w, "campaign has no contact template", http.StatusNotFound)
		return
	}
	for _, rec := range d.Records {
		if rec.Identifier == identifier {
			writeJSON(w, http.StatusOK, map[string]string{
				"identifier": identifier,
				"rendered":   records.RenderTemplate(d.Campaign.ContactTemplate, rec),
			})
			return
		}
	}
	http.Error(w, "record not found", http.StatusNotFound)
}

func (s *Server) handleContacted(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Contacted  bool   `json:"contacted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Identifier == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	if req.Contacted {
		err = s.Store.Mark(r.Context(), req.Identifier, time.Now())
	} else {
		err = s.Store.Unmark(r.Context(), req.Identifier)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.reload(r.Context()); err != nil {
		utils.Log.Error("Reload failed: ", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
