// Route registration for the demo API.

package httpapi

import "net/http"

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Health
	mux.HandleFunc("GET /health", a.handleHealth)

	// Tasks
	mux.HandleFunc("GET /tasks", a.handleListTasks)
	mux.HandleFunc("POST /tasks", a.handleCreateTask)
	mux.HandleFunc("GET /tasks/{id}", a.handleGetTask)
	mux.HandleFunc("PUT /tasks/{id}/status", a.handleSetTaskStatus)

	// Models and prediction
	mux.HandleFunc("GET /models", a.handleListModels)
	mux.HandleFunc("POST /predict", a.handlePredict)

	// Users
	mux.HandleFunc("GET /users", a.handleListUsers)
	mux.HandleFunc("POST /users", a.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", a.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", a.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", a.handleDeleteUser)

	// Posts
	mux.HandleFunc("GET /posts", a.handleListPosts)
	mux.HandleFunc("POST /posts", a.handleCreatePost)
}
