package live

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dashwire-dev/dashwire/pkg/dom"
	"github.com/dashwire-dev/dashwire/pkg/layout"
	"github.com/dashwire-dev/dashwire/pkg/middleware"
	"github.com/dashwire-dev/dashwire/pkg/render"
)

// AppFunc builds the page body for one session's scene. It is called once
// per page render and once per websocket session; building against the same
// scene construction order keeps binding IDs stable between the two.
type AppFunc func(scene *layout.Scene) *dom.VNode

// ServerConfig configures the live server.
type ServerConfig struct {
	// Title is the page title.
	Title string

	// Pretty enables pretty-printed HTML (development only).
	Pretty bool

	// MaxSessions caps concurrent live sessions. 0 means unlimited.
	MaxSessions int

	// EnableMetrics mounts /metrics and records session metrics.
	EnableMetrics bool
}

// Server serves the rendered dashboard page and its live websocket
// endpoint.
type Server struct {
	config   ServerConfig
	app      AppFunc
	log      zerolog.Logger
	manager  *Manager
	metrics  *middleware.SessionMetrics
	upgrader websocket.Upgrader
}

// NewServer creates a live server for the given app.
func NewServer(config ServerConfig, app AppFunc, log zerolog.Logger) *Server {
	s := &Server{
		config:  config,
		app:     app,
		log:     log,
		manager: NewManager(config.MaxSessions, log),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	if config.EnableMetrics {
		s.metrics = middleware.NewSessionMetrics()
	}
	return s
}

// Manager exposes the session manager (shutdown, counts).
func (s *Server) Manager() *Manager {
	return s.manager
}

// Routes returns the HTTP routes: the page, the websocket endpoint, health,
// and optionally metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	if s.config.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// handlePage renders the full dashboard page.
func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	scene := layout.New()
	defer scene.Close()

	body := s.app(scene)
	page := dom.Html(
		dom.Head(
			dom.Meta(dom.Attr{Key: "charset", Value: "utf-8"}),
			dom.Title(s.config.Title),
			layout.StyleNode(),
		),
		dom.Body(
			body,
			dom.Script(dom.Raw(clientScript)),
		),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderer := render.New(render.Config{Pretty: s.config.Pretty})
	if err := renderer.ToWriter(w, page); err != nil {
		s.log.Error().Err(err).Msg("page render failed")
	}
}

// handleLive upgrades to a websocket and runs a session against a fresh
// scene built by the same app function, so binding IDs line up with the
// rendered page.
func (s *Server) handleLive(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	scene := layout.New()
	s.app(scene)

	var mws []middleware.Middleware
	if s.metrics != nil {
		mws = append(mws, s.metrics.Middleware())
	}

	session := NewSession(conn, scene, s.log, mws...)
	if err := s.manager.Add(session); err != nil {
		s.log.Warn().Err(err).Msg("rejecting session")
		conn.Close()
		scene.Close()
		return
	}

	if s.metrics != nil {
		s.metrics.Sessions.Inc()
		defer s.metrics.Sessions.Dec()
	}

	s.log.Debug().Str("session", session.ID()).Msg("session started")
	session.Start()
}

// handleHealth reports liveness and the session count.
func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

// clientScript is the thin browser client: it connects to /live, forwards
// activation events on nodes carrying data-dw, and applies class patches.
const clientScript = `(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/live");
  function send(ref, event) {
    if (ws.readyState === 1) {
      ws.send(JSON.stringify({ type: "event", ref: ref, event: event }));
    }
  }
  function hook(eventName) {
    document.addEventListener(eventName, function (e) {
      var el = e.target.closest("[data-dw][data-on-" + eventName + "]");
      if (el) send(el.getAttribute("data-dw"), eventName);
    }, true);
  }
  hook("click");
  document.querySelectorAll("[data-on-pointerenter]").forEach(function (el) {
    el.addEventListener("pointerenter", function () {
      send(el.getAttribute("data-dw"), "pointerenter");
    });
    el.addEventListener("pointerleave", function () {
      send(el.getAttribute("data-dw"), "pointerleave");
    });
  });
  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.type !== "patch" || !frame.patches) return;
    frame.patches.forEach(function (p) {
      var el = document.querySelector('[data-dw="' + p.ref + '"]');
      if (!el) return;
      (p.add || []).forEach(function (c) { el.classList.add(c); });
      (p.remove || []).forEach(function (c) { el.classList.remove(c); });
    });
  };
})();
`
