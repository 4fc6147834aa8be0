package equipment

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/KunjShah95/gearguard/internal/transport"
	"github.com/KunjShah95/gearguard/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateEquipment(dto CreateEquipmentDTO) (*Equipment, error)
	GetEquipmentByID(id string) (*Equipment, error)
	GetAllEquipment() ([]*Equipment, error)
	UpdateEquipment(id string, dto UpdateEquipmentDTO) (*Equipment, error)
	UpdateStatus(id string, dto UpdateEquipmentStatusDTO) (*Equipment, error)
	DeleteEquipment(id string) error
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

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var dto CreateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEquipment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.Service.CreateEquipment(dto)
	if err != nil {
		h.Logger.Error("CreateEquipment: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, eq)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	eq, err := h.Service.GetEquipmentByID(equipmentID)
	if err != nil {
		h.Logger.Error("GetEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, eq)
}

func (h *Handler) GetAllEquipment(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.GetAllEquipment()
	if err != nil {
		h.Logger.Error("GetAllEquipment: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"equipment": records,
	})
}

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	var dto UpdateEquipmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEquipment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.Service.UpdateEquipment(equipmentID, dto)
	if err != nil {
		h.Logger.Error("UpdateEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, eq)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	var dto UpdateEquipmentStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateStatus: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	eq, err := h.Service.UpdateStatus(equipmentID, dto)
	if err != nil {
		h.Logger.Error("UpdateStatus: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, eq)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	if err := h.Service.DeleteEquipment(equipmentID); err != nil {
		h.Logger.Error("DeleteEquipment: service error", "error", err, "equipment_id", equipmentID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
