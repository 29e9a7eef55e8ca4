package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/swatchfile/swatch/internal/backup"
	"github.com/swatchfile/swatch/internal/history"
	"github.com/swatchfile/swatch/internal/model"
	"github.com/swatchfile/swatch/internal/service"
	"github.com/swatchfile/swatch/internal/store"
	"github.com/swatchfile/swatch/testutil"
)

func setupTestAPI(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	paths, cleanup := testutil.TempDataDir(t)

	colorStore := store.NewColorStore(paths)
	if _, err := colorStore.Save(testutil.TestRecords()); err != nil {
		t.Fatal(err)
	}

	svc := service.NewPaletteService(
		colorStore,
		history.NewManager(model.DefaultHistoryDepth),
		backup.NewManager(paths, model.DefaultBackupRetention),
	)

	mux := http.NewServeMux()
	NewHandler(svc).RegisterRoutes(mux)
	server := httptest.NewServer(mux)

	return server, func() {
		server.Close()
		cleanup()
	}
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodePalette(t *testing.T, resp *http.Response) PaletteResponse {
	t.Helper()
	defer resp.Body.Close()
	var palette PaletteResponse
	if err := json.NewDecoder(resp.Body).Decode(&palette); err != nil {
		t.Fatalf("decoding palette response: %v", err)
	}
	return palette
}

func TestListColors(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/colors", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	palette := decodePalette(t, resp)
	if len(palette.Colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(palette.Colors))
	}
	if palette.CanUndo || palette.CanRedo {
		t.Error("fresh palette reports undo/redo available")
	}

	first := palette.Colors[0]
	if first.Name != "Coral" {
		t.Errorf("first color = %q, want %q", first.Name, "Coral")
	}
	if first.Hex == "" || first.HSL == "" || first.CMYK == "" {
		t.Errorf("derived formats missing: %+v", first)
	}
}

func TestAddColor(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/colors", map[string]any{
		"name": "Mint",
		"rgb":  map[string]int{"r": 60, "g": 220, "b": 160},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	palette := decodePalette(t, resp)
	if len(palette.Colors) != 4 {
		t.Fatalf("got %d colors, want 4", len(palette.Colors))
	}
	if !palette.CanUndo {
		t.Error("CanUndo false after add")
	}
}

func TestAddColorErrors(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{
			name:       "blank name",
			body:       map[string]any{"name": "  ", "rgb": map[string]int{"r": 1, "g": 2, "b": 3}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate name",
			body:       map[string]any{"name": "cOrAl", "rgb": map[string]int{"r": 1, "g": 2, "b": 3}},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/colors", tt.body)
			resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAddColorAtCapacity(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	for i := 3; i < model.MaxColors; i++ {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/colors", map[string]any{
			"name": fmt.Sprintf("Filler %d", i),
			"rgb":  map[string]int{"r": i, "g": i, "b": i},
		})
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("setup add %d: status %d", i, resp.StatusCode)
		}
	}

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/colors", map[string]any{
		"name": "One Too Many",
		"rgb":  map[string]int{"r": 0, "g": 0, "b": 0},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}

func TestEditColor(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPut, server.URL+"/api/v1/colors/1", map[string]any{
		"name": "Deep Teal",
		"rgb":  map[string]int{"r": 0, "g": 100, "b": 100},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	palette := decodePalette(t, resp)
	if palette.Colors[1].Name != "Deep Teal" {
		t.Errorf("edited color = %q, want %q", palette.Colors[1].Name, "Deep Teal")
	}
}

func TestEditColorOutOfRange(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPut, server.URL+"/api/v1/colors/99", map[string]any{
		"name": "Ghost",
		"rgb":  map[string]int{"r": 1, "g": 2, "b": 3},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPut, server.URL+"/api/v1/colors/abc", map[string]any{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("non-integer index status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteColor(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/colors/0", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	palette := decodePalette(t, resp)
	if len(palette.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(palette.Colors))
	}
	if palette.Colors[0].Name != "Teal" || palette.Colors[0].Index != 0 {
		t.Errorf("unexpected first color after delete: %+v", palette.Colors[0])
	}
}

func TestMoveColor(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/colors/0/move", map[string]int{"to": 2})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	palette := decodePalette(t, resp)
	wantOrder := []string{"Teal", "Slate", "Coral"}
	for i, name := range wantOrder {
		if palette.Colors[i].Name != name {
			t.Errorf("position %d = %q, want %q", i, palette.Colors[i].Name, name)
		}
	}
}

func TestUndoRedoEndpoints(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodDelete, server.URL+"/api/v1/colors/0", nil)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/undo", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("undo status = %d, want 200", resp.StatusCode)
	}
	palette := decodePalette(t, resp)
	if len(palette.Colors) != 3 {
		t.Fatalf("undo returned %d colors, want 3", len(palette.Colors))
	}
	if !palette.CanRedo {
		t.Error("CanRedo false after undo")
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/redo", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("redo status = %d, want 200", resp.StatusCode)
	}
	palette = decodePalette(t, resp)
	if len(palette.Colors) != 2 {
		t.Errorf("redo returned %d colors, want 2", len(palette.Colors))
	}
}

func TestBackupEndpoints(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/backups", map[string]string{"reason": "api test"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if created["path"] == "" {
		t.Fatal("create returned empty path")
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/backups", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d, want 200", resp.StatusCode)
	}
	var backups []BackupResponse
	if err := json.NewDecoder(resp.Body).Decode(&backups); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if len(backups) != 1 {
		t.Fatalf("list returned %d backups, want 1", len(backups))
	}
	if backups[0].ColorCount != 3 {
		t.Errorf("backup colorCount = %d, want 3", backups[0].ColorCount)
	}

	// Mutate, then restore the snapshot.
	del := doJSON(t, http.MethodDelete, server.URL+"/api/v1/colors/0", nil)
	del.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/backups/restore", map[string]string{"path": created["path"]})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restore status = %d, want 200", resp.StatusCode)
	}
	palette := decodePalette(t, resp)
	if len(palette.Colors) != 3 {
		t.Errorf("restore returned %d colors, want 3", len(palette.Colors))
	}
}

func TestRestoreBackupMissingPath(t *testing.T) {
	server, cleanup := setupTestAPI(t)
	defer cleanup()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/backups/restore", map[string]string{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
