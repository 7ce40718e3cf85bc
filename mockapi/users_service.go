package mockapi

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/qa-harness/reqres-contract-tests/apimodel"
	"github.com/qa-harness/reqres-contract-tests/framework"
	"github.com/qa-harness/reqres-contract-tests/framework/helpers"
)

// UsersService serves the users resource. Reads come from a fixed set of users; creates,
// updates, and deletes are acknowledged in the same way as the public API but are not
// persisted, so every run sees the same data.
type UsersService struct {
	users       []apimodel.User
	perPage     int
	nextID      int
	now         func() time.Time
	handler     http.Handler
	debugLogger framework.Logger
	lock        sync.Mutex
}

// NewUsersService creates a UsersService with the standard seed data. Its routes are relative
// to the API root, for instance "/users/2".
func NewUsersService(debugLogger framework.Logger) *UsersService {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &UsersService{
		users:       SeedUsers(),
		perPage:     defaultPerPage,
		nextID:      100,
		now:         time.Now,
		debugLogger: debugLogger,
	}

	router := mux.NewRouter()
	router.HandleFunc(apimodel.UsersPath, s.listUsers).Methods("GET")
	router.HandleFunc(apimodel.UsersPath, s.createUser).Methods("POST")
	router.HandleFunc(apimodel.UsersPath+"/{id}", s.getUser).Methods("GET")
	router.HandleFunc(apimodel.UsersPath+"/{id}", s.updateUser).Methods("PUT", "PATCH")
	router.HandleFunc(apimodel.UsersPath+"/{id}", s.deleteUser).Methods("DELETE")
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.debugLogger.Printf("No route for %s %s", r.Method, r.URL.Path)
		s.writeJSON(w, http.StatusNotFound, map[string]interface{}{})
	})
	s.handler = router

	return s
}

func (s *UsersService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *UsersService) listUsers(w http.ResponseWriter, r *http.Request) {
	page := positiveIntParam(r, "page", 1)
	perPage := positiveIntParam(r, "per_page", s.perPage)

	total := len(s.users)
	totalPages := 0
	if total > 0 {
		totalPages = (total-1)/perPage + 1
	}
	data := []apimodel.User{}
	if page <= totalPages {
		// start < total here, so neither value can overflow
		start := (page - 1) * perPage
		end := total
		if perPage < total-start {
			end = start + perPage
		}
		data = helpers.CopyOf(s.users[start:end])
	}

	s.writeJSON(w, http.StatusOK, apimodel.UserListPage{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
		Support:    defaultSupport(),
	})
}

func (s *UsersService) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.findUser(mux.Vars(r)["id"])
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]interface{}{})
		return
	}
	s.writeJSON(w, http.StatusOK, apimodel.SingleUser{Data: user, Support: defaultSupport()})
}

func (s *UsersService) createUser(w http.ResponseWriter, r *http.Request) {
	fields := s.readJSONFields(r)
	s.lock.Lock()
	id := s.nextID
	s.nextID++
	s.lock.Unlock()
	s.writeJSON(w, http.StatusCreated,
		withMeta(fields, apimodel.CreatedMeta{ID: strconv.Itoa(id), CreatedAt: s.now().UTC()}))
}

func (s *UsersService) updateUser(w http.ResponseWriter, r *http.Request) {
	fields := s.readJSONFields(r)
	s.writeJSON(w, http.StatusOK, withMeta(fields, apimodel.UpdatedMeta{UpdatedAt: s.now().UTC()}))
}

func (s *UsersService) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.debugLogger.Printf("Deleted user %s", mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *UsersService) findUser(idParam string) (apimodel.User, bool) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return apimodel.User{}, false
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return apimodel.User{}, false
}

// readJSONFields returns the properties of a JSON object body. As with the public API, the body
// is only parsed if the request declares a JSON content type; otherwise it is ignored.
func (s *UsersService) readJSONFields(r *http.Request) map[string]interface{} {
	fields := make(map[string]interface{})
	body, _ := io.ReadAll(r.Body)
	s.debugLogger.Printf("Got %s %s %s", r.Method, r.URL.Path, string(body))
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" || len(body) == 0 {
		return fields
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		s.debugLogger.Printf("Ignoring body that is not a JSON object: %s", err)
		return make(map[string]interface{})
	}
	if fields == nil { // body was "null"
		fields = make(map[string]interface{})
	}
	return fields
}

// withMeta adds the properties of meta to an echoed body, replacing any that have the same name.
func withMeta(fields map[string]interface{}, meta interface{}) map[string]interface{} {
	var metaFields map[string]interface{}
	_ = json.Unmarshal(helpers.AsJSON(meta), &metaFields)
	for k, v := range metaFields {
		fields[k] = v
	}
	return fields
}

func (s *UsersService) writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, _ := json.Marshal(value)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
	s.debugLogger.Printf("Responded with %d %s", status, string(data))
}

func positiveIntParam(r *http.Request, name string, defaultValue int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}
