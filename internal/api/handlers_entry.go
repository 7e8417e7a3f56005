package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	respond "github.com/journalkeep/diary-server/internal/api/respond"
	"github.com/journalkeep/diary-server/internal/api/validate"
	"github.com/journalkeep/diary-server/internal/core/diary"
	"github.com/journalkeep/diary-server/internal/model"
	"github.com/journalkeep/diary-server/internal/search"
)

// maxUploadBytes bounds how much of a multipart body is held in memory before
// spilling to disk.
const maxUploadBytes = 32 << 20

// EntryHandler serves the entry creation, listing and search endpoints.
type EntryHandler struct {
	svc    *diary.Service
	engine *search.Engine
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(svc *diary.Service, engine *search.Engine) *EntryHandler {
	return &EntryHandler{svc: svc, engine: engine}
}

// CreateEntry POST /entries
// Accepts a multipart form with an optional "text" field and optional "image"
// and "audio" files.
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	// Tolerate plain form encodings for text-only entries; the empty-request
	// case is rejected by the service, not the parser.
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respond.WriteBadRequest(w, "malformed form data")
		return
	}

	req := diary.CreateEntryRequest{Text: r.FormValue("text")}

	image, err := readFormFile(r, "image")
	if err != nil {
		respond.WriteBadRequest(w, "image: "+err.Error())
		return
	}
	req.Image = image

	audio, err := readFormFile(r, "audio")
	if err != nil {
		respond.WriteBadRequest(w, "audio: "+err.Error())
		return
	}
	req.Audio = audio

	entry, err := h.svc.CreateEntry(r.Context(), req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, entry)
}

// ListEntries GET /entries
func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListEntries(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if entries == nil {
		entries = []*model.DiaryEntry{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": entries, "count": len(entries)})
}

// SearchEntries GET /entries/search?query=
func (h *EntryHandler) SearchEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	entries, err := h.engine.Search(r.Context(), query)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": entries, "count": len(entries)})
}

// readFormFile returns the named upload, or nil when the field is absent.
func readFormFile(r *http.Request, field string) (*diary.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func(c multipart.File) { _ = c.Close() }(file)

	if err := validate.Filename(header.Filename); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &diary.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
