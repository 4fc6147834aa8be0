package request_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appErrors "github.com/KunjShah95/gearguard/internal"
	"github.com/KunjShah95/gearguard/internal/auth"
	"github.com/KunjShah95/gearguard/internal/request"
)

// Mock service for handler tests
type mockRequestService struct {
	request     *request.Request
	requests    []*request.Request
	board       map[string][]*request.Request
	returnError error

	lastCallerID string
	lastDTO      interface{}
}

func (m *mockRequestService) CreateRequest(callerID string, dto request.CreateRequestDTO) (*request.Request, error) {
	m.lastCallerID = callerID
	m.lastDTO = dto
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.request, nil
}

func (m *mockRequestService) GetRequestByID(id string) (*request.Request, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.request, nil
}

func (m *mockRequestService) GetAllRequests() ([]*request.Request, error) {
	return m.requests, m.returnError
}

func (m *mockRequestService) GetRequestsForUser(userID string) ([]*request.Request, error) {
	m.lastCallerID = userID
	return m.requests, m.returnError
}

func (m *mockRequestService) GetRequestsByEquipment(equipmentID string) ([]*request.Request, error) {
	return m.requests, m.returnError
}

func (m *mockRequestService) GetCalendar(from, to time.Time) ([]*request.Request, error) {
	return m.requests, m.returnError
}

func (m *mockRequestService) GetKanban() (map[string][]*request.Request, error) {
	return m.board, m.returnError
}

func (m *mockRequestService) UpdateRequest(id string, dto request.UpdateRequestDTO) (*request.Request, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.request, nil
}

func (m *mockRequestService) UpdateStatus(id, callerID string, dto request.UpdateRequestStatusDTO) (*request.Request, error) {
	m.lastCallerID = callerID
	m.lastDTO = dto
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.request, nil
}

func (m *mockRequestService) AssignRequest(id string, dto request.AssignRequestDTO) (*request.Request, error) {
	m.lastDTO = dto
	if dto.AssignedToID == "" {
		return nil, appErrors.ErrMissingAssignee
	}
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.request, nil
}

func authedRequest(method, target string, body []byte, user *auth.User) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(auth.ContextWithUser(req.Context(), user))
	}
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

var _ = Describe("RequestHandler", func() {
	var (
		handler  *request.Handler
		service  *mockRequestService
		recorder *httptest.ResponseRecorder
		caller   *auth.User
	)

	BeforeEach(func() {
		service = &mockRequestService{
			request: &request.Request{
				ID:      "req-1",
				Subject: "Press leaking fluid",
				Status:  request.StatusNew,
			},
		}
		handler = request.NewHandler(service)
		recorder = httptest.NewRecorder()
		caller = &auth.User{ID: "user-1", Email: "tech@gearguard.local", Role: auth.RoleTechnician}
	})

	Describe("CreateRequest", func() {
		It("should create a request for the authenticated caller", func() {
			body, _ := json.Marshal(map[string]interface{}{
				"subject":     "Press leaking fluid",
				"equipmentId": "eq-1",
			})
			req := authedRequest("POST", "/api/v1/requests", body, caller)

			handler.CreateRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			Expect(service.lastCallerID).To(Equal("user-1"))
		})

		It("should require authentication", func() {
			req := authedRequest("POST", "/api/v1/requests", []byte(`{}`), nil)

			handler.CreateRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject malformed JSON", func() {
			req := authedRequest("POST", "/api/v1/requests", []byte("not json"), caller)

			handler.CreateRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should surface typed service errors with their status", func() {
			service.returnError = appErrors.ErrEquipmentNotFound
			body, _ := json.Marshal(map[string]interface{}{
				"subject":     "Broken",
				"equipmentId": "missing",
			})
			req := authedRequest("POST", "/api/v1/requests", body, caller)

			handler.CreateRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("UpdateStatus", func() {
		It("should pass the caller identity to the service", func() {
			body, _ := json.Marshal(map[string]string{"status": request.StatusInProgress})
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/status", body, caller), "id", "req-1")

			handler.UpdateStatus(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(service.lastCallerID).To(Equal("user-1"))
		})

		It("should map the membership refusal to forbidden", func() {
			service.returnError = appErrors.ErrNotTeamMember
			body, _ := json.Marshal(map[string]string{"status": request.StatusInProgress})
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/status", body, caller), "id", "req-1")

			handler.UpdateStatus(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))

			var response map[string]map[string]interface{}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["error"]["message"]).To(ContainSubstring("member of the maintenance team"))
		})

		It("should require authentication", func() {
			body, _ := json.Marshal(map[string]string{"status": request.StatusInProgress})
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/status", body, nil), "id", "req-1")

			handler.UpdateStatus(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("AssignRequest", func() {
		It("should reject a missing assignee", func() {
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/assign", []byte(`{}`), caller), "id", "req-1")

			handler.AssignRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("should map an outside assignee to forbidden", func() {
			service.returnError = appErrors.ErrAssigneeNotTeamMember
			body, _ := json.Marshal(map[string]string{"assignedToId": "outsider"})
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/assign", body, caller), "id", "req-1")

			handler.AssignRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("should assign a valid technician", func() {
			body, _ := json.Marshal(map[string]string{"assignedToId": "tech-1"})
			req := withURLParam(authedRequest("PATCH", "/api/v1/requests/req-1/assign", body, caller), "id", "req-1")

			handler.AssignRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("GetRequest", func() {
		It("should map not found errors", func() {
			service.returnError = appErrors.ErrRequestNotFound
			req := withURLParam(authedRequest("GET", "/api/v1/requests/missing", nil, caller), "id", "missing")

			handler.GetRequest(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GetCalendar", func() {
		It("should reject a malformed range", func() {
			req := authedRequest("GET", "/api/v1/requests/calendar?from=yesterday", nil, caller)

			handler.GetCalendar(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
