package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/polyrpc/demoapi/pkg/api/types"
	"github.com/polyrpc/demoapi/pkg/resource"
	"github.com/polyrpc/demoapi/pkg/service"
	"github.com/polyrpc/demoapi/pkg/validation"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, types.ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeCoreError maps a core error onto HTTP status codes: validation
// failures become 400, not-found 404, unavailable 503.
func (a *API) writeCoreError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   "validation_error",
			Message: verr.Error(),
			Details: verr.Errors,
		})
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, service.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err.Error())
	default:
		a.log.Error("operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}

// writeResult renders a fallible outcome in the Result envelope used by
// the task and prediction endpoints: business failures (not found,
// unavailable) are a 200 with success=false, only malformed input is an
// HTTP error.
func writeResult[T any](a *API, w http.ResponseWriter, data T, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, types.OK(data))
		return
	}
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrUnavailable) {
		writeJSON(w, http.StatusOK, types.Fail[T](err.Error()))
		return
	}
	a.writeCoreError(w, err)
}

// decodeJSONBody decodes the request body, answering 400 on malformed
// JSON. Returns false when the response has been written.
func (a *API) decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_json",
			Message: "invalid request body",
			Details: []*validation.FieldError{validation.NewInvalidJSONError(err.Error())},
		})
		return false
	}
	return true
}

// pathID parses the {id} path segment. Returns false when the response
// has been written.
func (a *API) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return 0, false
	}
	return id, true
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.HealthCheck())
}

// --- Tasks ---

// handleListTasks handles GET /tasks.
func (a *API) handleListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.ListTasks())
}

// handleGetTask handles GET /tasks/{id}.
func (a *API) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	t, err := a.svc.GetTask(id)
	writeResult(a, w, t, err)
}

// handleCreateTask handles POST /tasks.
func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req resource.CreateTaskRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	t, err := a.svc.CreateTask(req)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// setTaskStatusRequest is the body of PUT /tasks/{id}/status.
type setTaskStatusRequest struct {
	Status string `json:"status"`
}

// handleSetTaskStatus handles PUT /tasks/{id}/status.
func (a *API) handleSetTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req setTaskStatusRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	t, err := a.svc.SetTaskStatus(id, req.Status)
	writeResult(a, w, t, err)
}

// --- Models ---

// handleListModels handles GET /models.
func (a *API) handleListModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.ListModels())
}

// handlePredict handles POST /predict.
func (a *API) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req resource.PredictionRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	out, err := a.svc.Predict(req)
	writeResult(a, w, out, err)
}

// --- Users ---

// handleListUsers handles GET /users?page=&pageSize=&role=.
func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	page, ok := a.queryInt(w, r, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := a.queryInt(w, r, "pageSize", 10)
	if !ok {
		return
	}
	p, err := a.svc.ListUsers(page, pageSize, r.URL.Query().Get("role"))
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleGetUser handles GET /users/{id}.
func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	u, err := a.svc.GetUser(id)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleCreateUser handles POST /users.
func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req resource.CreateUserRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	u, err := a.svc.CreateUser(req)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// handleUpdateUser handles PUT /users/{id}.
func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	var req resource.UpdateUserRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	u, err := a.svc.UpdateUser(id, req)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// handleDeleteUser handles DELETE /users/{id}.
func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	res, err := a.svc.DeleteUser(id)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// --- Posts ---

// handleListPosts handles GET /posts?authorId=.
func (a *API) handleListPosts(w http.ResponseWriter, r *http.Request) {
	var authorID *int
	if v := r.URL.Query().Get("authorId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_query", "authorId must be an integer")
			return
		}
		authorID = &n
	}
	writeJSON(w, http.StatusOK, a.svc.ListPosts(authorID))
}

// handleCreatePost handles POST /posts.
func (a *API) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req resource.CreatePostRequest
	if !a.decodeJSONBody(w, r, &req) {
		return
	}
	p, err := a.svc.CreatePost(req)
	if err != nil {
		a.writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// queryInt parses an integer query parameter, falling back to def when
// absent. Non-numeric values answer 400; out-of-range values are passed
// through so the core can reject them uniformly.
func (a *API) queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_query", name+" must be an integer")
		return 0, false
	}
	return n, true
}
