package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed sportsdbdata
var sportsdbdata embed.FS

// League ids the fake server treats specially. The real ids for the Premier
// League (4328) and La Liga (4331) return teams and a null teams list.
const (
	LeagueIDNoTeamsKey = "4334" // Bundesliga: {} with no teams key
	LeagueIDServerErr  = "4387" // NBA: 500
	LeagueIDBadJSON    = "9998"
)

type FakeSportsDBServer struct {
	s        *httptest.Server
	requests atomic.Int64
}

func NewFakeSportsDBServer() *FakeSportsDBServer {
	f := &FakeSportsDBServer{}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.requests.Add(1)
			next.ServeHTTP(w, r)
		})
	})
	r.Route("/api/v1/json/{key}", func(r chi.Router) {
		r.Get("/searchteams.php", searchTeamsHandler)
		r.Get("/lookup_all_teams.php", lookupAllTeamsHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeSportsDBServer) Close() {
	f.s.Close()
}

func (f *FakeSportsDBServer) URL() string {
	return f.s.URL
}

// Requests is the number of requests the server has received.
func (f *FakeSportsDBServer) Requests() int64 {
	return f.requests.Load()
}

func searchTeamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("t") == "Arsenal" {
		serveFile(w, "searchteams_arsenal.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"teams":null}`))
	}
}

func lookupAllTeamsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("id") {
	case "4328":
		serveFile(w, "lookup_all_teams_4328.json")
	case LeagueIDNoTeamsKey:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	case LeagueIDServerErr:
		w.WriteHeader(http.StatusInternalServerError)
	case LeagueIDBadJSON:
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"teams": [`))
	default:
		// Unknown ids seem to return a null list rather than an error
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"teams":null}`))
	}
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sportsdbdata.ReadFile(fmt.Sprintf("sportsdbdata/%s", name))
	if err != nil {
		log.Printf("error reading sportsdbdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
