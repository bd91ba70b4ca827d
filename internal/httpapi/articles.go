package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"olympiad-cms/internal/content"
	"olympiad-cms/internal/event"
)

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	q := content.ArticleQuery{
		ListQuery: parseListQuery(v),
		Category:  v.Get("category"),
		Featured:  boolParam(v, "featured"),
	}

	articles, page, err := s.store.Articles().List(r.Context(), q)
	if err != nil {
		s.storeError(w, err, "article", "fetch articles")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"articles":   articles,
		"pagination": page,
	})
}

func (s *Server) articleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.Articles().Categories(r.Context())
	if err != nil {
		s.storeError(w, err, "article", "fetch categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.store.Articles().Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "article", "fetch article")
		return
	}
	respondJSON(w, http.StatusOK, article)
}

func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var article content.Article
	fh, err := decodeBody(r, &article, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := article.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("image", fh)
		if err != nil {
			s.logger.Printf("store article image: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		article.Image = ref
	}

	if err := s.store.Articles().Create(r.Context(), &article); err != nil {
		s.storeError(w, err, "article", "create article")
		return
	}
	s.publish(r, "article", event.ActionCreated, article.ID)
	respondJSON(w, http.StatusCreated, article)
}

func (s *Server) updateArticle(w http.ResponseWriter, r *http.Request) {
	var u content.ArticleUpdate
	fh, err := decodeBody(r, &u, "image")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if fh != nil {
		ref, err := s.uploads.Save("image", fh)
		if err != nil {
			s.logger.Printf("store article image: %v", err)
			respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
			return
		}
		u.Image = &ref
	}

	article, err := s.store.Articles().Update(r.Context(), mux.Vars(r)["id"], u)
	if err != nil {
		s.storeError(w, err, "article", "update article")
		return
	}
	s.publish(r, "article", event.ActionUpdated, article.ID)
	respondJSON(w, http.StatusOK, article)
}

func (s *Server) deleteArticle(w http.ResponseWriter, r *http.Request) {
	article, err := s.store.Articles().Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err, "article", "delete article")
		return
	}
	if article.Image != "" {
		s.uploads.Remove(article.Image)
	}
	s.publish(r, "article", event.ActionDeleted, article.ID)
	respondJSON(w, http.StatusOK, map[string]string{"message": "article deleted"})
}
