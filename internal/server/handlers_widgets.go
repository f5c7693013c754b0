package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// handleWidgetCollection routes /api/widgets (no trailing path).
func (s *Server) handleWidgetCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleWidgetList(w, r)
	case http.MethodPost:
		s.handleWidgetCreate(w, r)
	default:
		RequireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// routeWidgets dispatches /api/widgets/{id}[/render|/data].
func (s *Server) routeWidgets(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/widgets/"), "/")
	if rest == "" {
		s.handleWidgetCollection(w, r)
		return
	}

	parts := strings.SplitN(rest, "/", 2)
	id := parts[0]

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			s.handleWidgetGet(w, r, id)
		case http.MethodDelete:
			s.handleWidgetDelete(w, r, id)
		default:
			RequireMethod(w, r, http.MethodGet, http.MethodDelete)
		}
		return
	}

	switch parts[1] {
	case "render":
		s.handleWidgetRender(w, r, id)
	case "data":
		s.handleWidgetData(w, r, id)
	default:
		WriteError(w, http.StatusNotFound, "Unknown widget resource: "+parts[1])
	}
}

// registerWidgetRequest is the POST /api/widgets payload.
type registerWidgetRequest struct {
	Name   string                 `json:"name"`
	Config models.RawWidgetConfig `json:"config"`
}

func (s *Server) handleWidgetCreate(w http.ResponseWriter, r *http.Request) {
	if !s.requireAuth(w, r) {
		return
	}

	var req registerWidgetRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	record, err := s.app.Widgets.RegisterWidget(r.Context(), req.Name, req.Config)
	if err != nil {
		if models.IsInvalidParameter(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, "Error registering widget: "+err.Error())
		return
	}

	WriteJSON(w, http.StatusCreated, record)
}

func (s *Server) handleWidgetList(w http.ResponseWriter, r *http.Request) {
	widgets, err := s.app.Widgets.ListWidgets(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Error listing widgets: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"widgets": widgets})
}

func (s *Server) handleWidgetGet(w http.ResponseWriter, r *http.Request, id string) {
	record, err := s.app.Widgets.GetWidget(r.Context(), id)
	if err != nil {
		WriteError(w, http.StatusNotFound, "Widget not found: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, record)
}

func (s *Server) handleWidgetDelete(w http.ResponseWriter, r *http.Request, id string) {
	if !s.requireAuth(w, r) {
		return
	}
	if err := s.app.Widgets.DeleteWidget(r.Context(), id); err != nil {
		WriteError(w, http.StatusNotFound, "Widget not found: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// handleWidgetRender responds to GET /api/widgets/{id}/render with an HTML
// fragment: the resolved layout, or the loading/error placeholder. The
// embedding page's identity arrives as query parameters and feeds the
// structured-data document.
func (s *Server) handleWidgetRender(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	page := models.PageContext{
		Title: r.URL.Query().Get("title"),
		URL:   r.URL.Query().Get("url"),
	}

	result, err := s.app.Widgets.RenderWidget(r.Context(), id, page)
	if err != nil {
		if models.IsInvalidParameter(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, http.StatusNotFound, "Widget not found: "+err.Error())
		return
	}

	html, err := s.renderer.Render(result)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Render error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Widget-State", string(result.Kind))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// handleWidgetData responds to GET /api/widgets/{id}/data with the resolved
// aggregate state as JSON. Acquisition failures map to 502.
func (s *Server) handleWidgetData(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resolved, err := s.app.Widgets.ResolveWidget(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrAcquisitionFailed):
			WriteError(w, http.StatusBadGateway, err.Error())
		case models.IsInvalidParameter(err):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			WriteError(w, http.StatusNotFound, "Widget not found: "+err.Error())
		}
		return
	}

	WriteJSON(w, http.StatusOK, resolved)
}
