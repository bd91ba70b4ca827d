package httpapi

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/event"
)

func (s *Server) listMedia(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := content.MediaQuery{
		ListQuery: parseListQuery(v),
		Type:      v.Get("type"),
	}

	items, page, err := s.store.Media().List(r.Context(), q)
	if err != nil {
		s.storeError(w, err, "media item", "fetch media")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"media":      items,
		"pagination": page,
	})
}

func (s *Server) getMedia(w http.ResponseWriter, r *http.Request) {
	item, err := s.store.Media().Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "media item", "fetch media item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (s *Server) createMedia(w http.ResponseWriter, r *http.Request) {
	var item content.MediaItem
	fh, err := decodeBody(r, &item, "file")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh == nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}

	ref, err := s.uploads.Save("file", fh)
	if err != nil {
		s.logger.Printf("store media file: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}
	item.File = ref
	item.OriginalName = fh.Filename
	item.Size = fh.Size
	item.MimeType = fh.Header.Get("Content-Type")
	if item.Type == "" {
		item.Type = mediaType(item.MimeType)
	}

	if err := item.Validate(); err != nil {
		s.uploads.Remove(ref)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.Media().Create(r.Context(), &item); err != nil {
		s.uploads.Remove(ref)
		s.storeError(w, err, "media item", "create media item")
		return
	}
	s.publish(r, "media", event.ActionCreated, item.ID)
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) deleteMedia(w http.ResponseWriter, r *http.Request) {
	item, err := s.store.Media().Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "media item", "delete media item")
		return
	}
	if item.File != "" {
		s.uploads.Remove(item.File)
	}
	s.publish(r, "media", event.ActionDeleted, item.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "media item deleted"})
}

func mediaType(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return content.MediaImage
	case strings.HasPrefix(mime, "video/"):
		return content.MediaVideo
	default:
		return content.MediaOther
	}
}
