package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mcdev12/randomuser/go/internal/fakeapi"
	"github.com/rs/zerolog/log"
)

func setupServer(addr string) *http.Server {
	mux := http.NewServeMux()

	api := fakeapi.NewServer()
	mux.Handle(fakeapi.BasePath, api)
	mux.Handle(fakeapi.BasePath+"/", api)

	setupHealthCheck(mux)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

// startLocalServer serves the stand-in API on a loopback port and returns
// its base URL.
func startLocalServer() (*http.Server, string, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, "", fmt.Errorf("listen: %w", err)
	}

	srv := setupServer(ln.Addr().String())
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("local server failed")
		}
	}()

	return srv, "http://" + ln.Addr().String() + fakeapi.BasePath, nil
}

func cmdServe(ctx context.Context, args []string, stderr io.Writer) int {
	var configPath string
	fs := newFlagSet("serve", stderr)
	addr := fs.String("addr", ":"+getEnv("PORT", "8089"), "listen address")
	configFlag(fs, &configPath)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if _, err := loadConfig(configPath, stderr); err != nil {
		fmt.Fprintf(stderr, "randomuser-check: %v\n", err)
		return 2
	}

	srv := setupServer(*addr)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("stand-in API starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("stand-in API failed")
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("stand-in API shutdown failed")
		return 1
	}
	<-errCh

	log.Info().Msg("stand-in API shutdown complete")
	return 0
}
