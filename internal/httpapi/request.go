package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"olympiad-cms/internal/content"
)

const (
	maxJSONBody     = 10 << 20 // JSON bodies only; file size is unconstrained
	multipartMemory = 32 << 20
)

// decodeBody decodes a create/update payload. Multipart requests carry
// the JSON under the "data" field plus an optional file under
// fileField; plain requests carry a JSON body. Returns the file header
// when one was attached.
func decodeBody(r *http.Request, dst any, fileField string) (*multipart.FileHeader, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, errors.New("invalid form data")
		}
		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), dst); err != nil {
				return nil, errors.New("invalid data payload")
			}
		}
		if fileField != "" && r.MultipartForm != nil {
			if files := r.MultipartForm.File[fileField]; len(files) > 0 {
				return files[0], nil
			}
		}
		return nil, nil
	}

	body := http.MaxBytesReader(nil, r.Body, maxJSONBody)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is required")
		}
		return nil, errors.New("invalid JSON payload")
	}
	return nil, nil
}

func parseListQuery(v url.Values) content.ListQuery {
	page, _ := strconv.Atoi(v.Get("page"))
	limit, _ := strconv.Atoi(v.Get("limit"))
	return content.ListQuery{
		Page:   page,
		Limit:  limit,
		Search: v.Get("search"),
	}
}

// boolParam returns nil unless the parameter is literally true/false,
// so an absent flag means "no filter".
func boolParam(v url.Values, key string) *bool {
	switch v.Get(key) {
	case "true":
		t := true
		return &t
	case "false":
		f := false
		return &f
	}
	return nil
}
