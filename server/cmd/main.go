package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"burrow/server"
	"burrow/server/application"
	"burrow/server/config"
	"burrow/server/domain"
	"burrow/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "9090")

	cfg := config.Default()
	if path := utils.GetEnvDefault("CONFIG_PATH", ""); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		cfg = loaded
	}

	broadcaster := domain.NewBroadcaster()

	wall, err := application.NewWall(cfg.WallLayout(), application.LoggingPresenterFactory, nil)
	if err != nil {
		log.Fatalf("wall error: %v", err)
	}

	scorer := application.NewFeedbackScorer()
	mapper := application.NewPlanarSurfaceMapperForWall(wall)
	raycaster := application.NewWallRaycaster(wall, 0.12*cfg.Wall.MoleScale)
	pointer := application.NewPointer(wall, mapper, raycaster, scorer, cfg.PointerSettings())

	// デモ用の自走入力。壁全体が見える手前からプレイする。
	b := wall.Bounds()
	pointerOrigin := domain.Vec3{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: b.Min.Z - 2.0,
	}
	driver := application.NewAutoPointerDriver(pointerOrigin, nil)

	session := application.NewGameSession(wall, pointer, scorer, driver, broadcaster, cfg.SessionSettings(), nil)
	go func() {
		if err := session.Run(ctx); err != nil {
			slog.ErrorContext(ctx, "session error", "err", err)
		}
	}()

	s := server.NewServer(fmt.Sprintf("%s:%s", addr, port), server.Route(broadcaster))
	go func() {
		if err := s.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()
	slog.InfoContext(ctx, "server listening", "addr", addr+":"+port, "sessionID", session.ID)

	<-ctx.Done()
	slog.InfoContext(ctx, "shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "graceful shutdown failed", "error", err)
		if err := s.Close(); err != nil {
			slog.ErrorContext(ctx, "forced close failed", "error", err)
		}
	}
	slog.InfoContext(ctx, "server shutdown complete")
}
