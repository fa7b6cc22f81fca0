// Package httprouter is a demo HTTP façade over pkg/router.Router. It
// mirrors the controller/servicer split of the teacher's generated
// openapi_server: a Service holds the business logic, and NewRouter
// binds it to a *mux.Router's named routes.
package httprouter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/orthonet/gridrouter/pkg/geometry"
	"github.com/orthonet/gridrouter/pkg/router"
)

// Service implements the business logic behind the HTTP endpoints: it
// owns a *router.Router and the last-computed path per registered route.
type Service struct {
	mu sync.Mutex

	rt     *router.Router
	routes map[string]*router.Route
	paths  map[string][]geometry.Point
	nextID int
}

// NewService wraps rt for HTTP use.
func NewService(rt *router.Router) *Service {
	return &Service{
		rt:     rt,
		routes: make(map[string]*router.Route),
		paths:  make(map[string][]geometry.Point),
	}
}

type obstacleRequest struct {
	Left, Top, Right, Bottom float64
}

type routeRequest struct {
	StartX, StartY, GoalX, GoalY float64
}

type routeResponse struct {
	ID string `json:"id"`
}

type pathResponse struct {
	GroupID int              `json:"groupId"`
	Path    []geometry.Point `json:"path"`
}

// AddObstacle handles POST /obstacles.
func (s *Service) AddObstacle(w http.ResponseWriter, r *http.Request) {
	var req obstacleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.rt.AddObstacle(geometry.Rectangle{Left: req.Left, Top: req.Top, Right: req.Right, Bottom: req.Bottom})
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// AddRoute handles POST /routes. The registered route's endpoints are
// fixed values captured at request time (router.Fixed), since an HTTP
// request has no way to express a live moving point.
func (s *Service) AddRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	id := fmt.Sprintf("%d", s.nextID)
	s.nextID++

	start := router.Fixed(geometry.Point{X: req.StartX, Y: req.StartY})
	goal := router.Fixed(geometry.Point{X: req.GoalX, Y: req.GoalY})
	route, err := s.rt.AddRoute(start, goal, func(route *router.Route, path []geometry.Point) {
		// Runs inside s.rt.Route(), which the Route handler calls with
		// s.mu already held.
		s.paths[id] = path
	})
	if err != nil {
		s.mu.Unlock()
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.routes[id] = route
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, routeResponse{ID: id})
}

// Route handles POST /route, triggering one full Route() pass.
func (s *Service) Route(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.rt.Route()
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// GetPath handles GET /routes/{id}/path.
func (s *Service) GetPath(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.routes[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no route with id %q", id))
		return
	}

	groupID, _ := route.GroupID()
	writeJSON(w, http.StatusOK, pathResponse{GroupID: groupID, Path: s.paths[id]})
}

// NewRouter binds s's handlers to a fresh *mux.Router.
func NewRouter(s *Service) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/obstacles", s.AddObstacle).Methods(http.MethodPost)
	r.HandleFunc("/routes", s.AddRoute).Methods(http.MethodPost)
	r.HandleFunc("/route", s.Route).Methods(http.MethodPost)
	r.HandleFunc("/routes/{id}/path", s.GetPath).Methods(http.MethodGet)
	return r
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
