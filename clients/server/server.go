// Package server provides the GoCaptcha HTTP API: issue a challenge image,
// verify the submitted answer once, forget it either way.
package server

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	mrand "math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

const (
	defaultCodeLength = 4
	challengeTTL      = 5 * time.Minute
)

type srv struct {
	gen        *captcha.Generator
	genMu      sync.Mutex // the generator's random source is not concurrency-safe
	challenges *challengeStore
	codeLength int
	rng        *mrand.Rand // code generation; guarded by genMu
}

// RunServe starts the captcha API server.
//
//	gocaptcha serve [--port 8080] [--preset preset.json]
func RunServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.String("port", "8080", "Listen port")
	presetPath := fs.String("preset", "", "Path to preset JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := captcha.DefaultConfig()
	codeLength := defaultCodeLength
	if *presetPath != "" {
		preset, err := captcha.LoadPreset(*presetPath)
		if err != nil {
			return err
		}
		if cfg, err = preset.Config(); err != nil {
			return err
		}
		if preset.CodeLength > 0 {
			codeLength = preset.CodeLength
		}
	}

	gen, err := captcha.New(cfg)
	if err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	s := newSrv(gen, codeLength)

	addr := ":" + *port
	slog.Info("GoCaptcha API listening", "addr", addr, "canvas", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	return http.ListenAndServe(addr, s.routes())
}

func newSrv(gen *captcha.Generator, codeLength int) *srv {
	return &srv{
		gen:        gen,
		challenges: newChallengeStore(challengeTTL),
		codeLength: codeLength,
		rng:        mrand.New(mrand.NewSource(time.Now().UnixNano())),
	}
}

func (s *srv) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/captcha/new", s.handleNew)
	mux.HandleFunc("POST /api/captcha/verify", s.handleVerify)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// newResponse is the payload for a freshly issued challenge.
type newResponse struct {
	ID    string `json:"id"`
	Image string `json:"image"` // data:image/png;base64,...
}

func (s *srv) handleNew(w http.ResponseWriter, r *http.Request) {
	s.genMu.Lock()
	code := captcha.RandomCode(s.rng, s.codeLength)
	img, err := s.gen.BuildImage(code)
	s.genMu.Unlock()
	if err != nil {
		slog.Error("build captcha", "error", err.Error())
		http.Error(w, "captcha generation failed", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := captcha.Encode(&buf, ".png", img, 0); err != nil {
		slog.Error("encode captcha", "error", err.Error())
		http.Error(w, "captcha encoding failed", http.StatusInternalServerError)
		return
	}

	id := randomID()
	s.challenges.put(id, code)
	slog.Info("captcha issued", "id", id)

	writeJSON(w, newResponse{
		ID:    id,
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// verifyRequest is the payload for an answer submission.
type verifyRequest struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
}

type verifyResponse struct {
	OK bool `json:"ok"`
}

func (s *srv) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "decode request: "+err.Error(), http.StatusBadRequest)
		return
	}

	answer, ok := s.challenges.take(req.ID)
	ok = ok && strings.EqualFold(answer, req.Answer)
	slog.Info("captcha verified", "id", req.ID, "ok", ok)

	writeJSON(w, verifyResponse{OK: ok})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// randomID returns a 16-hex-char challenge id.
func randomID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
