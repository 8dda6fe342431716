package scan

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"netexposure/internal/model"
)

// bannerLimit caps how much a service may say before we stop listening.
const bannerLimit = 64

// Probe makes a single TCP connection attempt against host:port. A peer that
// accepts within the timeout becomes an Exposure; refused, unreachable, and
// timed-out attempts all resolve to nil rather than an error, since most of
// the address space is expected not to answer. After connecting, a newline is
// sent to coax banners out of protocols that wait for client input, then up
// to 64 bytes are read under a fresh deadline of the same duration. A read
// that times out or hits EOF still counts as an open service with no banner.
func Probe(ctx context.Context, host string, port int, timeout time.Duration) *model.Exposure {
	dialer := net.Dialer{Timeout: timeout, KeepAlive: -1}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	if _, err := conn.Write([]byte("\n")); err != nil {
		return nil
	}

	_ = conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, bannerLimit)
	n, err := conn.Read(buf)
	if err != nil && n == 0 && !bannerlessRead(err) {
		return nil
	}

	exp := &model.Exposure{Host: host, Port: port}
	if banner := decodeBanner(buf[:n]); banner != "" {
		exp.ServiceBanner = &banner
	}
	return exp
}

// bannerlessRead reports whether a failed read still leaves the connection
// attempt itself standing: the peer stayed silent until the deadline or
// closed without sending anything. Resets and other socket errors void the
// probe entirely.
func bannerlessRead(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// decodeBanner turns raw service output into display text. Invalid UTF-8
// sequences are dropped and surrounding whitespace is trimmed.
func decodeBanner(raw []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(raw), ""))
}
