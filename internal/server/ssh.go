// Package server hosts the multiplayer-facing frontends: a terminal
// experience over SSH and a browser experience over websockets. Sessions
// share the immutable map but each one owns its player and frame, so one
// connection's movement never tears another's rendering.
package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"

	"chosenoffset.com/corridor9/internal/config"
	"chosenoffset.com/corridor9/internal/core/caster"
	"chosenoffset.com/corridor9/internal/game"
	"chosenoffset.com/corridor9/internal/render"
	"chosenoffset.com/corridor9/internal/render/ansi"
	"chosenoffset.com/corridor9/internal/world/maploader"
)

// Terminal input is keypress-driven (there is no key-up over a PTY), so
// each keystroke applies a few render ticks' worth of movement.
const (
	keyMoveScale   = 4
	keyRotateScale = 5

	frameInterval = 33 * time.Millisecond
)

// SSHServer serves the game to SSH clients.
type SSHServer struct {
	cfg config.Config
	m   *maploader.Map
}

// NewSSHServer creates an SSH server for the given map.
func NewSSHServer(cfg config.Config, m *maploader.Map) *SSHServer {
	return &SSHServer{cfg: cfg, m: m}
}

// Start begins listening for SSH connections. Blocks.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.cfg.SSHAddr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}
	if s.cfg.HostKeyPath != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.cfg.HostKeyPath)); err != nil {
			return fmt.Errorf("set host key: %w", err)
		}
	}
	log.Printf("SSH server listening on %s", s.cfg.SSHAddr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	sessionID := uuid.NewString()
	log.Printf("session connected: %s (%s)", sessionID, sess.User())
	defer log.Printf("session disconnected: %s", sessionID)

	world := game.NewWorld(s.m.Grid, s.m.Spawn, 0,
		s.cfg.MoveStep*keyMoveScale, s.cfg.RotateStep*keyRotateScale)
	renderer := render.NewRenderer(caster.New(s.m.Grid, caster.Tuning{
		RelativeScreenSize: s.cfg.RelativeScreenSize,
		FocalLength:        s.cfg.FocalLength,
		IlluminationRadius: s.cfg.IlluminationRadius,
		MinimumLight:       s.cfg.MinimumLight,
	}))

	// Two pixel rows per terminal cell.
	var frameMu sync.Mutex
	frame := render.NewFrame(ptyReq.Window.Width, ptyReq.Window.Height*2)

	io.WriteString(sess, ansi.EnableAltScreen())
	io.WriteString(sess, ansi.HideCursor())
	io.WriteString(sess, ansi.ClearScreen())
	defer func() {
		io.WriteString(sess, ansi.ShowCursor())
		io.WriteString(sess, ansi.DisableAltScreen())
	}()

	intents := make(chan game.Input, 16)
	quit := make(chan struct{})

	// Reader: raw keystrokes to intents.
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quit)
				return
			}
			inputs, quitRequested := ParseKeys(buf[:n])
			if quitRequested {
				close(quit)
				return
			}
			for _, in := range inputs {
				select {
				case intents <- in:
				default:
				}
			}
		}
	}()

	// Window resizes replace the frame.
	go func() {
		for win := range winCh {
			frameMu.Lock()
			frame = render.NewFrame(win.Width, win.Height*2)
			frameMu.Unlock()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			for {
				select {
				case in := <-intents:
					world.Tick(in)
					continue
				default:
				}
				break
			}

			frameMu.Lock()
			f := frame
			frameMu.Unlock()

			pos, heading := world.PlayerState()
			renderer.RenderFrame(f, pos, heading)
			io.WriteString(sess, ansi.FrameString(f))
		}
	}
}

// ParseKeys converts raw terminal bytes into per-keystroke intents.
// Handles WASD, arrow-key escape sequences, and quit on q, Escape or
// Ctrl-C.
func ParseKeys(data []byte) (inputs []game.Input, quit bool) {
	i := 0
	for i < len(data) {
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				inputs = append(inputs, game.Input{MoveForward: true})
			case 'B':
				inputs = append(inputs, game.Input{MoveBackward: true})
			case 'C':
				inputs = append(inputs, game.Input{RotateRight: true})
			case 'D':
				inputs = append(inputs, game.Input{RotateLeft: true})
			}
			i += 3
			continue
		}
		switch data[i] {
		case 'w', 'W':
			inputs = append(inputs, game.Input{MoveForward: true})
		case 's', 'S':
			inputs = append(inputs, game.Input{MoveBackward: true})
		case 'a', 'A':
			inputs = append(inputs, game.Input{RotateLeft: true})
		case 'd', 'D':
			inputs = append(inputs, game.Input{RotateRight: true})
		case 'q', 'Q', 0x1b, 3:
			return nil, true
		}
		i++
	}
	return inputs, false
}
