package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/event"
)

func (s *Server) listResults(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	year, _ := strconv.Atoi(v.Get("year"))
	q := content.ResultQuery{
		ListQuery: parseListQuery(v),
		Category:  v.Get("category"),
		Year:      year,
	}

	results, page, err := s.store.Results().List(r.Context(), q)
	if err != nil {
		s.storeError(w, err, "result", "fetch results")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"results":    results,
		"pagination": page,
	})
}

func (s *Server) getResult(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Results().Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "result", "fetch result")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) createResult(w http.ResponseWriter, r *http.Request) {
	var result content.Result
	if _, err := decodeBody(r, &result, ""); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := result.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Results().Create(r.Context(), &result); err != nil {
		s.storeError(w, err, "result", "create result")
		return
	}
	s.publish(r, "result", event.ActionCreated, result.ID)
	respondJSON(w, http.StatusCreated, result)
}

func (s *Server) updateResult(w http.ResponseWriter, r *http.Request) {
	var u content.ResultUpdate
	if _, err := decodeBody(r, &u, ""); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.store.Results().Update(r.Context(), mux.Vars(r)["id"], u)
	if err != nil {
		s.storeError(w, err, "result", "update result")
		return
	}
	s.publish(r, "result", event.ActionUpdated, result.ID)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) deleteResult(w http.ResponseWriter, r *http.Request) {
	result, err := s.store.Results().Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "result", "delete result")
		return
	}
	s.publish(r, "result", event.ActionDeleted, result.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "result deleted"})
}
