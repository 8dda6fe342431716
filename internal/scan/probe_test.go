package scan

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

// startListener serves loopback connections with handle until the test ends.
func startListener(t *testing.T, handle func(net.Conn)) (host string, port int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go handle(conn)
		}
	}()
	return "127.0.0.1", ln.Addr().(*net.TCPAddr).Port
}

func TestProbeReadsImmediateBanner(t *testing.T) {
	host, port := startListener(t, func(conn net.Conn) {
		defer conn.Close()
		_, _ = conn.Write([]byte("SSH-2.0-OpenSSH_9.6\r\n"))
		time.Sleep(200 * time.Millisecond)
	})

	exp := Probe(context.Background(), host, port, time.Second)
	if exp == nil {
		t.Fatal("expected an exposure for an accepting listener")
	}
	if exp.Host != host || exp.Port != port {
		t.Fatalf("unexpected endpoint %s:%d", exp.Host, exp.Port)
	}
	if exp.ServiceBanner == nil || *exp.ServiceBanner != "SSH-2.0-OpenSSH_9.6" {
		t.Fatalf("unexpected banner: %v", exp.ServiceBanner)
	}
}

func TestProbeReadsBannerAfterNudge(t *testing.T) {
	host, port := startListener(t, func(conn net.Conn) {
		defer conn.Close()
		buf := make([]byte, 1)
		if _, err := conn.Read(buf); err != nil {
			return
		}
		_, _ = conn.Write([]byte("220 ftp ready\r\n"))
	})

	exp := Probe(context.Background(), host, port, time.Second)
	if exp == nil {
		t.Fatal("expected an exposure")
	}
	if exp.ServiceBanner == nil || *exp.ServiceBanner != "220 ftp ready" {
		t.Fatalf("unexpected banner: %v", exp.ServiceBanner)
	}
}

func TestProbeSilentListenerIsStillExposure(t *testing.T) {
	host, port := startListener(t, func(conn net.Conn) {
		defer conn.Close()
		time.Sleep(2 * time.Second)
	})

	timeout := 300 * time.Millisecond
	start := time.Now()
	exp := Probe(context.Background(), host, port, timeout)
	elapsed := time.Since(start)
	if exp == nil {
		t.Fatal("expected an exposure for a silent listener")
	}
	if exp.ServiceBanner != nil {
		t.Fatalf("expected no banner, got %q", *exp.ServiceBanner)
	}
	if elapsed > 4*timeout {
		t.Fatalf("silent probe took %s, expected it bounded by the read deadline", elapsed)
	}
}

func TestProbeClosedPortYieldsNothing(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	timeout := 2 * time.Second
	start := time.Now()
	if exp := Probe(context.Background(), "127.0.0.1", port, timeout); exp != nil {
		t.Fatalf("expected no exposure for a closed port, got %+v", exp)
	}
	if elapsed := time.Since(start); elapsed > timeout {
		t.Fatalf("closed-port probe took %s, want at most %s", elapsed, timeout)
	}
}

func TestProbeBannerTruncatedToLimit(t *testing.T) {
	host, port := startListener(t, func(conn net.Conn) {
		defer conn.Close()
		_, _ = conn.Write([]byte(strings.Repeat("A", 200)))
		time.Sleep(200 * time.Millisecond)
	})

	exp := Probe(context.Background(), host, port, time.Second)
	if exp == nil || exp.ServiceBanner == nil {
		t.Fatal("expected a banner")
	}
	if got := len(*exp.ServiceBanner); got == 0 || got > bannerLimit {
		t.Fatalf("banner length %d, want between 1 and %d", got, bannerLimit)
	}
}

func TestProbeDropsInvalidBannerBytes(t *testing.T) {
	host, port := startListener(t, func(conn net.Conn) {
		defer conn.Close()
		_, _ = conn.Write([]byte{0xff, 0xfe, 'm', 'y', 's', 'q', 'l', '\n'})
		time.Sleep(200 * time.Millisecond)
	})

	exp := Probe(context.Background(), host, port, time.Second)
	if exp == nil || exp.ServiceBanner == nil {
		t.Fatal("expected a banner")
	}
	if *exp.ServiceBanner != "mysql" {
		t.Fatalf("banner = %q, want %q", *exp.ServiceBanner, "mysql")
	}
}

func TestProbeCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if exp := Probe(ctx, "127.0.0.1", 65000, time.Second); exp != nil {
		t.Fatalf("expected no exposure with a canceled context, got %+v", exp)
	}
}

func TestDecodeBanner(t *testing.T) {
	cases := map[string]struct {
		raw  []byte
		want string
	}{
		"trims whitespace": {[]byte("  220 ftp ready \r\n"), "220 ftp ready"},
		"drops invalid":    {[]byte{0xff, 'h', 'i'}, "hi"},
		"empty":            {nil, ""},
		"only noise":       {[]byte{0xff, 0xfe, '\n'}, ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := decodeBanner(tc.raw); got != tc.want {
				t.Fatalf("decodeBanner(%v) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
