package server

import (
	"bytes"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

// WebSocket heartbeat settings to detect disconnected clients.
const (
	pingInterval = 10 * time.Second
	pongWait     = 60 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The page may be served from anywhere; frames carry no secrets.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebServer streams rendered frames to browser clients over websockets.
// Each connection owns a player; the client reports its held-key state and
// receives PNG-encoded frames.
type WebServer struct {
	cfg config.Config
	m   *maploader.Map
}

// NewWebServer creates a web server for the given map.
func NewWebServer(cfg config.Config, m *maploader.Map) *WebServer {
	return &WebServer{cfg: cfg, m: m}
}

// Router builds the HTTP routes: the embedded client page and the
// websocket endpoint.
func (s *WebServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
	})
	r.Get("/ws", s.handleWS)
	return r
}

// Start begins serving HTTP. Blocks.
func (s *WebServer) Start() error {
	log.Printf("web server listening on %s", s.cfg.HTTPAddr)
	return http.ListenAndServe(s.cfg.HTTPAddr, s.Router())
}

// keyState mirrors game.Input as the client's wire message.
type keyState struct {
	RotateLeft   bool `json:"rotateLeft"`
	RotateRight  bool `json:"rotateRight"`
	MoveForward  bool `json:"moveForward"`
	MoveBackward bool `json:"moveBackward"`
}

func (s *WebServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log.Printf("web client connected: %s (%s)", connID, r.RemoteAddr)
	defer log.Printf("web client disconnected: %s", connID)

	world := game.NewWorld(s.m.Grid, s.m.Spawn, 0, s.cfg.MoveStep, s.cfg.RotateStep)
	renderer := render.NewRenderer(caster.New(s.m.Grid, caster.Tuning{
		RelativeScreenSize: s.cfg.RelativeScreenSize,
		FocalLength:        s.cfg.FocalLength,
		IlluminationRadius: s.cfg.IlluminationRadius,
		MinimumLight:       s.cfg.MinimumLight,
	}))
	frame := render.NewFrame(s.cfg.RenderWidth, s.cfg.RenderHeight)

	var mu sync.Mutex
	var held keyState
	done := make(chan struct{})

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader: held-key state updates.
	go func() {
		defer close(done)
		for {
			var state keyState
			if err := conn.ReadJSON(&state); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("web client %s read error: %v", connID, err)
				}
				return
			}
			mu.Lock()
			held = state
			mu.Unlock()
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()
	pings := time.NewTicker(pingInterval)
	defer pings.Stop()

	var buf bytes.Buffer
	for {
		select {
		case <-done:
			return
		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-frames.C:
			mu.Lock()
			in := game.Input(held)
			mu.Unlock()
			world.Tick(in)

			pos, heading := world.PlayerState()
			renderer.RenderFrame(frame, pos, heading)

			buf.Reset()
			if err := png.Encode(&buf, frame); err != nil {
				log.Printf("web client %s encode error: %v", connID, err)
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()); err != nil {
				return
			}
		}
	}
}
