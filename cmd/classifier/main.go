package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/sbilibin2017/gw-water-quality/internal/classifier"
	"github.com/sbilibin2017/gw-water-quality/internal/facades"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
)

// classifier serves the baseline potability model over gRPC so the API
// can run against a real remote classifier in development.
func main() {
	addr := flag.String("a", ":50051", "Address to listen on")
	threshold := flag.Float64("t", classifier.DefaultThreshold, "Potability threshold")
	logLevel := flag.String("l", "info", "Log level")
	flag.Parse()

	if err := run(context.Background(), *addr, *threshold, *logLevel); err != nil {
		log.Fatalf("classifier stopped with error: %v", err)
	}
}

func run(ctx context.Context, addr string, threshold float64, logLevel string) error {
	if err := logger.Initialize(logLevel); err != nil {
		return err
	}
	defer logger.Sync()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := grpc.NewServer()
	facades.RegisterClassifierServer(srv, classifier.NewBaseline(threshold))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infow("Classifier listening", "addr", lis.Addr().String(), "threshold", threshold)
		errChan <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("Shutdown signal received, stopping classifier...")
		srv.GracefulStop()
		return nil
	case err := <-errChan:
		return err
	}
}
