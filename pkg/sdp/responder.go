package sdp

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/pion/logging"
	"golang.org/x/net/ipv6"
)

// MulticastGroup is the all-nodes link-local multicast address SDP
// discovery requests arrive on (spec §4.2).
const MulticastGroup = "ff02::1"

// DiscoveryPort is the UDP port the responder listens on (spec §3).
const DiscoveryPort = 15118

// maxFrameSize bounds a single read: the discovery request frame is 10
// bytes; anything larger is read and then rejected by matchRequest.
const maxFrameSize = 256

// ResponderConfig configures a Responder.
type ResponderConfig struct {
	// Interface is the name of the network interface to join the
	// multicast group on (spec §6: positional CLI argument, default
	// "seth0").
	Interface string

	// TCPPort is the TCP port advertised in discovery responses.
	TCPPort uint16

	// LoggerFactory is the factory for creating loggers. If nil, logging
	// is disabled.
	LoggerFactory logging.LoggerFactory
}

// Responder answers SDP discovery requests on the configured interface
// with the EVSE's link-local address and TCP port. Grounded on the
// teacher's pkg/transport/udp.go Start/Stop/readLoop shape, swapping a
// plain net.PacketConn for an ipv6.PacketConn joined to a multicast
// group, since SDP is a bespoke wire protocol rather than mDNS.
type Responder struct {
	conn     *ipv6.PacketConn
	addr     net.IP
	tcpPort  uint16
	closeCh  chan struct{}
	wg       sync.WaitGroup
	log      logging.LeveledLogger

	mu      sync.Mutex
	started bool
	closed  bool
}

// NewResponder resolves the configured interface's link-local address,
// binds a UDP6 socket on DiscoveryPort, and joins MulticastGroup. Bind
// and interface-resolution failures are returned to the caller as
// startup-fatal (spec §4.2 "Bind failure is fatal").
func NewResponder(cfg ResponderConfig) (*Responder, error) {
	ifi, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return nil, ErrInterfaceNotFound
	}

	addr, err := ResolveLinkLocalAddress(cfg.Interface)
	if err != nil {
		return nil, err
	}

	pc, err := net.ListenPacket("udp6", fmt.Sprintf(":%d", DiscoveryPort))
	if err != nil {
		return nil, err
	}

	pconn := ipv6.NewPacketConn(pc)
	group := &net.UDPAddr{IP: net.ParseIP(MulticastGroup)}
	if err := pconn.JoinGroup(ifi, group); err != nil {
		pc.Close()
		return nil, err
	}

	r := &Responder{
		conn:    pconn,
		addr:    addr,
		tcpPort: cfg.TCPPort,
		closeCh: make(chan struct{}),
	}
	if cfg.LoggerFactory != nil {
		r.log = cfg.LoggerFactory.NewLogger("sdp")
	}

	return r, nil
}

// Start begins the read loop.
func (r *Responder) Start() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	if r.started {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.started = true
	r.mu.Unlock()

	if r.log != nil {
		r.log.Infof("SDP responder listening on [%s]:%d", MulticastGroup, DiscoveryPort)
	}

	r.wg.Add(1)
	go r.readLoop()

	return nil
}

// Stop closes the socket and waits for the read loop to exit.
func (r *Responder) Stop() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.closed = true
	r.mu.Unlock()

	if r.log != nil {
		r.log.Info("stopping SDP responder")
	}

	close(r.closeCh)
	r.conn.SetReadDeadline(time.Now())
	r.conn.Close()
	r.wg.Wait()

	return nil
}

func (r *Responder) readLoop() {
	defer r.wg.Done()

	buf := make([]byte, maxFrameSize)

	for {
		select {
		case <-r.closeCh:
			return
		default:
		}

		n, _, src, err := r.conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-r.closeCh:
				return
			default:
				if r.log != nil {
					r.log.Warnf("SDP read error: %v", err)
				}
				continue
			}
		}

		if !matchRequest(buf[:n]) {
			if r.log != nil {
				r.log.Debugf("dropping malformed SDP request from %v", src)
			}
			continue
		}

		if r.log != nil {
			r.log.Infof("SDP discovery request from %v", src)
		}

		resp, err := buildResponse(r.addr, r.tcpPort)
		if err != nil {
			if r.log != nil {
				r.log.Errorf("building SDP response: %v", err)
			}
			continue
		}

		if _, err := r.conn.WriteTo(resp, nil, src); err != nil && r.log != nil {
			r.log.Warnf("SDP write error: %v", err)
		}
	}
}
