package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swatchfile/swatch/internal/backup"
	"github.com/swatchfile/swatch/internal/color"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/internal/service"
)

// Handler exposes the palette service over a local REST API.
type Handler struct {
	service *service.PaletteService
}

// NewHandler creates a new API handler.
func NewHandler(svc *service.PaletteService) *Handler {
	return &Handler{service: svc}
}

// ColorResponse is one swatch with its derived text formats, so the web
// view never has to re-implement the conversions.
type ColorResponse struct {
	Index int       `json:"index"`
	Name  string    `json:"name"`
	RGB   color.RGB `json:"rgb"`
	Hex   string    `json:"hex"`
	HSL   string    `json:"hsl"`
	CMYK  string    `json:"cmyk"`
}

// PaletteResponse is the full collection plus undo/redo availability for
// UI enablement.
type PaletteResponse struct {
	Colors  []ColorResponse `json:"colors"`
	CanUndo bool            `json:"can_undo"`
	CanRedo bool            `json:"can_redo"`
}

// BackupResponse describes one backup file.
type BackupResponse struct {
	Path            string `json:"path"`
	TimestampMillis int64  `json:"timestamp"`
	ColorCount      int    `json:"color_count"`
	Version         string `json:"version"`
}

type colorRequest struct {
	Name string    `json:"name"`
	RGB  color.RGB `json:"rgb"`
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/colors", h.listColors)
	mux.HandleFunc("POST /api/v1/colors", h.addColor)
	mux.HandleFunc("PUT /api/v1/colors/{index}", h.editColor)
	mux.HandleFunc("DELETE /api/v1/colors/{index}", h.deleteColor)
	mux.HandleFunc("POST /api/v1/colors/{index}/move", h.moveColor)
	mux.HandleFunc("POST /api/v1/undo", h.undo)
	mux.HandleFunc("POST /api/v1/redo", h.redo)
	mux.HandleFunc("GET /api/v1/backups", h.listBackups)
	mux.HandleFunc("POST /api/v1/backups", h.createBackup)
	mux.HandleFunc("POST /api/v1/backups/restore", h.restoreBackup)
}

func (h *Handler) palette(records []model.ColorRecord) PaletteResponse {
	colors := make([]ColorResponse, len(records))
	for i, rec := range records {
		colors[i] = ColorResponse{
			Index: rec.Index,
			Name:  rec.Name,
			RGB:   rec.RGB,
			Hex:   rec.RGB.Hex(),
			HSL:   rec.RGB.HSL().String(),
			CMYK:  rec.RGB.CMYK().String(),
		}
	}
	return PaletteResponse{
		Colors:  colors,
		CanUndo: h.service.CanUndo(),
		CanRedo: h.service.CanRedo(),
	}
}

func (h *Handler) listColors(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.palette(h.service.Load()))
}

func (h *Handler) addColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	records, err := h.service.Add(req.Name, req.RGB)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, h.palette(records))
}

func (h *Handler) editColor(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	var req colorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	records, err := h.service.Edit(index, req.Name, req.RGB)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) deleteColor(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	records, err := h.service.Delete(index)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) moveColor(w http.ResponseWriter, r *http.Request) {
	index, ok := h.pathIndex(w, r)
	if !ok {
		return
	}

	var req struct {
		To int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid request body")
		return
	}

	records, err := h.service.Move(index, req.To)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) undo(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.service.Undo()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) redo(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.service.Redo()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	backups, err := h.service.ListBackups()
	if err != nil {
		Error(w, err)
		return
	}

	resp := make([]BackupResponse, len(backups))
	for i, b := range backups {
		resp[i] = backupResponse(b)
	}
	JSON(w, http.StatusOK, resp)
}

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // Body is optional
	}

	path, err := h.service.CreateBackup(req.Reason)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
		BadRequest(w, "missing backup path")
		return
	}

	records, err := h.service.RestoreFromBackup(req.Path)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.palette(records))
}

func (h *Handler) pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		BadRequest(w, "index must be an integer")
		return 0, false
	}
	return index, true
}

func backupResponse(b backup.Info) BackupResponse {
	return BackupResponse{
		Path:            b.Path,
		TimestampMillis: b.Metadata.TimestampMillis,
		ColorCount:      b.Metadata.ColorCount,
		Version:         b.Metadata.Version,
	}
}
