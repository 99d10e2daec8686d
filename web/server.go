package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/mww/sports_scoreboard/controller"
	"github.com/mww/sports_scoreboard/model"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
	hub    *Hub
}

func NewServer(port int, ctrl controller.C, hub *Hub) (*Server, error) {
	if hub == nil {
		return nil, fmt.Errorf("a websocket hub is required")
	}

	render := newRender()
	router := getRouter(ctrl, hub, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		hub: hub,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Shutdown does not touch hijacked connections, the hub closes those.
		s.hub.Close()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"clock":         clockFormatter,
				"goals":         goalsFormatter,
				"link":          viewLink,
				"positionClass": positionClass,
				"rankClass":     rankClass,
				"stat":          statFormatter,
				"statLabel":     statLabel,
				"winPct":        winPctFormatter,
			},
		},
	})
}

func clockFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("15:04:05")
}

// Synthesized goals can have a fractional part, only show it when there is one.
// Float noise such as 5*1.2 = 6.000000000000001 is rounded away first.
func goalsFormatter(g float64) string {
	g = math.Round(g*10) / 10
	if g == math.Trunc(g) {
		return strconv.FormatFloat(g, 'f', 0, 64)
	}
	return strconv.FormatFloat(g, 'f', 1, 64)
}

// positionClass colors a league table position: top 3, top 6, then the rest.
func positionClass(pos int) string {
	switch {
	case pos >= 1 && pos <= 3:
		return "gold"
	case pos >= 4 && pos <= 6:
		return "silver"
	default:
		return "bronze"
	}
}

// rankClass colors the rank badge of the top three players.
func rankClass(rank int) string {
	switch rank {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "bronze"
	default:
		return "plain"
	}
}

// viewLink builds a link to one of the pages that keeps the rest of the view state.
func viewLink(path string, view model.ViewState) template.URL {
	return template.URL(fmt.Sprintf("%s?%s", path, view.Query().Encode()))
}

func statFormatter(l model.StatLine, s model.Stat) string {
	return l.Format(s)
}

func statLabel(s model.Stat, sport model.Sport) string {
	return s.Label(sport)
}

func winPctFormatter(r model.TeamRecord) string {
	return fmt.Sprintf("%.1f%%", r.WinPercentage())
}
