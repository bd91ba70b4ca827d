package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/event"
)

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := content.EventQuery{
		ListQuery: parseListQuery(v),
		Category:  v.Get("category"),
		Upcoming:  v.Get("upcoming") == "true",
	}

	events, page, err := s.store.Events().List(r.Context(), q)
	if err != nil {
		s.storeError(w, err, "event", "fetch events")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"events":     events,
		"pagination": page,
	})
}

func (s *Server) getEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := s.store.Events().Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "event", "fetch event")
		return
	}
	respondJSON(w, http.StatusOK, ev)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	var ev content.Event
	fh, err := decodeBody(r, &ev, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := ev.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("image", fh)
		if err != nil {
			s.logger.Printf("store event image: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		ev.Image = ref
	}

	if err := s.store.Events().Create(r.Context(), &ev); err != nil {
		s.storeError(w, err, "event", "create event")
		return
	}
	s.publish(r, "event", event.ActionCreated, ev.ID)
	respondJSON(w, http.StatusCreated, ev)
}

func (s *Server) updateEvent(w http.ResponseWriter, r *http.Request) {
	var u content.EventUpdate
	fh, err := decodeBody(r, &u, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("image", fh)
		if err != nil {
			s.logger.Printf("store event image: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		u.Image = &ref
	}

	ev, err := s.store.Events().Update(r.Context(), mux.Vars(r)["id"], u)
	if err != nil {
		s.storeError(w, err, "event", "update event")
		return
	}
	s.publish(r, "event", event.ActionUpdated, ev.ID)
	respondJSON(w, http.StatusOK, ev)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := s.store.Events().Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "event", "delete event")
		return
	}
	if ev.Image != "" {
		s.uploads.Remove(ev.Image)
	}
	s.publish(r, "event", event.ActionDeleted, ev.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "event deleted"})
}
