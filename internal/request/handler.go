package request

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/KunjShah95/gearguard/internal/auth"
	"github.com/KunjShah95/gearguard/internal/transport"
	"github.com/KunjShah95/gearguard/pkg/logger"
)

type ServiceAPI interface {
	CreateRequest(callerID string, dto CreateRequestDTO) (*Request, error)
	GetRequestByID(id string) (*Request, error)
	GetAllRequests() ([]*Request, error)
	GetRequestsForUser(userID string) ([]*Request, error)
	GetRequestsByEquipment(equipmentID string) ([]*Request, error)
	GetCalendar(from, to time.Time) ([]*Request, error)
	GetKanban() (map[string][]*Request, error)
	UpdateRequest(id string, dto UpdateRequestDTO) (*Request, error)
	UpdateStatus(id, callerID string, dto UpdateRequestStatusDTO) (*Request, error)
	AssignRequest(id string, dto AssignRequestDTO) (*Request, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.CreateRequest(caller.ID, dto)
	if err != nil {
		h.Logger.Error("CreateRequest: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	req, err := h.Service.GetRequestByID(requestID)
	if err != nil {
		h.Logger.Error("GetRequest: service error", "error", err, "request_id", requestID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) GetAllRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.GetAllRequests()
	if err != nil {
		h.Logger.Error("GetAllRequests: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

// GetMyRequests returns the requests visible to the authenticated user:
// unowned requests plus those of the user's teams.
func (h *Handler) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	requests, err := h.Service.GetRequestsForUser(caller.ID)
	if err != nil {
		h.Logger.Error("GetMyRequests: service error", "error", err, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

func (h *Handler) GetRequestsByEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	requests, err := h.Service.GetRequestsByEquipment(equipmentID)
	if err != nil {
		h.Logger.Error("GetRequestsByEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

// GetCalendar serves the scheduling view. Defaults to the current month
// when no range is given.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "from must be an RFC 3339 timestamp")
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "to must be an RFC 3339 timestamp")
			return
		}
		to = parsed
	}

	requests, err := h.Service.GetCalendar(from, to)
	if err != nil {
		h.Logger.Error("GetCalendar: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
	})
}

func (h *Handler) GetKanban(w http.ResponseWriter, r *http.Request) {
	board, err := h.Service.GetKanban()
	if err != nil {
		h.Logger.Error("GetKanban: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"board": board,
	})
}

func (h *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var dto UpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateRequest(requestID, dto)
	if err != nil {
		h.Logger.Error("UpdateRequest: service error", "error", err, "request_id", requestID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	caller, ok := auth.UserFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var dto UpdateRequestStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateStatus(requestID, caller.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "request_id", requestID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) AssignRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var dto AssignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AssignRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.AssignRequest(requestID, dto)
	if err != nil {
		h.Logger.Error("AssignRequest: service error", "error", err, "request_id", requestID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}
