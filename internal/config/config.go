// Package config loads runtime configuration from the environment, with an
// optional .env file. Every value has a default so the game runs with no
// configuration at all; invalid values are rejected at startup rather than
// surfacing as rendering artifacts later.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the render tuning, movement steps and server addresses.
type Config struct {
	// Internal render resolution. Frontends scale this up to their
	// window or terminal.
	RenderWidth  int
	RenderHeight int

	// Projection: width of the virtual screen plane in world units and
	// its distance from the eye.
	RelativeScreenSize float64
	FocalLength        float64

	// Lighting falloff.
	IlluminationRadius float64
	MinimumLight       float64

	// Per-tick movement magnitudes.
	MoveStep   float64
	RotateStep float64

	// MapPath is the map file to load; empty means the built-in map.
	MapPath string

	// Server addresses.
	SSHAddr     string
	HTTPAddr    string
	HostKeyPath string
}

// Load reads configuration from a .env file (if present) and the process
// environment, then validates it.
func Load() (Config, error) {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		RenderWidth:        getInt("RENDER_WIDTH", 640),
		RenderHeight:       getInt("RENDER_HEIGHT", 360),
		RelativeScreenSize: getFloat("SCREEN_PLANE_SIZE", 2),
		FocalLength:        getFloat("FOCAL_LENGTH", 1),
		IlluminationRadius: getFloat("LIGHT_RADIUS", 12),
		MinimumLight:       getFloat("MIN_LIGHT", 0.15),
		MoveStep:           getFloat("MOVE_STEP", 0.08),
		RotateStep:         getFloat("ROTATE_STEP", math.Pi/72),
		MapPath:            os.Getenv("MAP_PATH"),
		SSHAddr:            getEnv("SSH_ADDR", ":2222"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		HostKeyPath:        os.Getenv("SSH_HOST_KEY"),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.RenderWidth <= 0 || c.RenderHeight <= 0 {
		return fmt.Errorf("invalid render resolution: %dx%d", c.RenderWidth, c.RenderHeight)
	}
	if c.RelativeScreenSize <= 0 {
		return fmt.Errorf("screen plane size must be positive, got %f", c.RelativeScreenSize)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("focal length must be positive, got %f", c.FocalLength)
	}
	if c.IlluminationRadius <= 0 {
		return fmt.Errorf("illumination radius must be positive, got %f", c.IlluminationRadius)
	}
	if c.MinimumLight < 0 || c.MinimumLight > 1 {
		return fmt.Errorf("minimum light must be in [0, 1], got %f", c.MinimumLight)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
