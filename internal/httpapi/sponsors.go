package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/event"
)

func (s *Server) listSponsors(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := content.SponsorQuery{
		ListQuery: parseListQuery(v),
		Tier:      v.Get("tier"),
		Active:    boolParam(v, "active"),
	}

	sponsors, page, err := s.store.Sponsors().List(r.Context(), q)
	if err != nil {
		s.storeError(w, err, "sponsor", "fetch sponsors")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"sponsors":   sponsors,
		"pagination": page,
	})
}

func (s *Server) getSponsor(w http.ResponseWriter, r *http.Request) {
	sponsor, err := s.store.Sponsors().Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "sponsor", "fetch sponsor")
		return
	}
	respondJSON(w, http.StatusOK, sponsor)
}

func (s *Server) createSponsor(w http.ResponseWriter, r *http.Request) {
	var sponsor content.Sponsor
	fh, err := decodeBody(r, &sponsor, "logo")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := sponsor.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("logo", fh)
		if err != nil {
			s.logger.Printf("store sponsor logo: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		sponsor.Logo = ref
	}

	if err := s.store.Sponsors().Create(r.Context(), &sponsor); err != nil {
		s.storeError(w, err, "sponsor", "create sponsor")
		return
	}
	s.publish(r, "sponsor", event.ActionCreated, sponsor.ID)
	respondJSON(w, http.StatusCreated, sponsor)
}

func (s *Server) updateSponsor(w http.ResponseWriter, r *http.Request) {
	var u content.SponsorUpdate
	fh, err := decodeBody(r, &u, "logo")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("logo", fh)
		if err != nil {
			s.logger.Printf("store sponsor logo: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		u.Logo = &ref
	}

	sponsor, err := s.store.Sponsors().Update(r.Context(), mux.Vars(r)["id"], u)
	if err != nil {
		s.storeError(w, err, "sponsor", "update sponsor")
		return
	}
	s.publish(r, "sponsor", event.ActionUpdated, sponsor.ID)
	respondJSON(w, http.StatusOK, sponsor)
}

func (s *Server) deleteSponsor(w http.ResponseWriter, r *http.Request) {
	sponsor, err := s.store.Sponsors().Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "sponsor", "delete sponsor")
		return
	}
	if sponsor.Logo != "" {
		s.uploads.Remove(sponsor.Logo)
	}
	s.publish(r, "sponsor", event.ActionDeleted, sponsor.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "sponsor deleted"})
}
