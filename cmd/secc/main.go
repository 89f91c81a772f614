// Command secc runs the EVSE (supply-equipment) side of an ISO 15118-2 DC
// fast-charging session: an SDP discovery responder and a single-peer TCP
// session engine on the given network interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pion/logging"
	"github.com/v2gredux/secc-go/internal/randsrc"
	"github.com/v2gredux/secc-go/pkg/evse"
	"github.com/v2gredux/secc-go/pkg/sdp"
	"github.com/v2gredux/secc-go/pkg/session"
	"github.com/v2gredux/secc-go/pkg/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "secc: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ifname := "seth0"
	flag.Parse()
	if flag.NArg() > 0 {
		ifname = flag.Arg(0)
	}

	cfg := evse.DefaultStationConfig()
	loggerFactory := logging.NewDefaultLoggerFactory()
	log := loggerFactory.NewLogger("secc")

	responder, err := sdp.NewResponder(sdp.ResponderConfig{
		Interface:     ifname,
		TCPPort:       uint16(cfg.TCPPort),
		LoggerFactory: loggerFactory,
	})
	if err != nil {
		return fmt.Errorf("starting SDP responder on %s: %w", ifname, err)
	}

	engine := session.NewEngine(session.EngineConfig{
		Station:       cfg,
		Random:        randsrc.New(),
		LoggerFactory: loggerFactory,
	})

	manager, err := transport.NewManager(transport.ManagerConfig{
		ListenAddr:    fmt.Sprintf(":%d", cfg.TCPPort),
		Handler:       engine,
		LoggerFactory: loggerFactory,
	})
	if err != nil {
		return fmt.Errorf("binding TCP listener on port %d: %w", cfg.TCPPort, err)
	}

	if err := responder.Start(); err != nil {
		return fmt.Errorf("starting SDP responder: %w", err)
	}
	defer responder.Stop()

	if err := manager.Start(); err != nil {
		return fmt.Errorf("starting TCP peer manager: %w", err)
	}
	defer manager.Stop()

	log.Infof("secc ready on interface %s (TCP %d, SDP %d)", ifname, cfg.TCPPort, cfg.SDPPort)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	return nil
}
