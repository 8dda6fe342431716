// Package wifi reports the channel of the currently connected Wi-Fi network
// by shelling out to the platform's wireless tooling.
package wifi

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

var airportPaths = []string{
	"/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport",
	"/System/Library/PrivateFrameworks/Apple80211.framework/Versions/A/Resources/airport",
}

var (
	airportChannelRe  = regexp.MustCompile(`channel:\s*(.+)`)
	iwconfigChannelRe = regexp.MustCompile(`Channel[:=](\d+)`)
	profilerChannelRe = regexp.MustCompile(`Channel:\s*(\d+)`)
)

// Channel returns the channel of the active Wi-Fi connection.
func Channel() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		return darwinChannel()
	case "linux":
		return linuxChannel()
	default:
		return "", errors.New("unsupported operating system; only macOS and Linux are supported")
	}
}

func darwinChannel() (string, error) {
	if airport := findAirport(); airport != "" {
		out, err := runCommand(airport, "-I")
		if err != nil {
			return "", err
		}
		if ch := parseAirportChannel(out); ch != "" {
			return ch, nil
		}
	}
	if out, err := runCommand("/usr/sbin/system_profiler", "SPAirPortDataType"); err == nil {
		if m := profilerChannelRe.FindStringSubmatch(out); m != nil {
			return m[1], nil
		}
	}
	return "", errors.New("unable to determine Wi-Fi channel: the airport utility is missing and system_profiler did not report a channel")
}

func linuxChannel() (string, error) {
	if nmcli, err := exec.LookPath("nmcli"); err == nil {
		out, err := runCommand(nmcli, "-t", "-f", "active,chan", "dev", "wifi")
		if err != nil {
			return "", err
		}
		if ch := parseNmcliChannel(out); ch != "" {
			return ch, nil
		}
	}
	if iwconfig, err := exec.LookPath("iwconfig"); err == nil {
		out, err := runCommand(iwconfig)
		if err != nil {
			return "", err
		}
		if ch := parseIwconfigChannel(out); ch != "" {
			return ch, nil
		}
	}
	return "", errors.New("neither nmcli nor iwconfig provided channel information")
}

func runCommand(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("command %s failed: %w", name, err)
	}
	return string(out), nil
}

// findAirport locates Apple's airport CLI, which newer macOS releases no
// longer put on PATH.
func findAirport() string {
	if p, err := exec.LookPath("airport"); err == nil {
		return p
	}
	for _, p := range airportPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// parseAirportChannel pulls the channel out of `airport -I` output. Some
// macOS versions report values like "149,1"; only the leading number is the
// channel.
func parseAirportChannel(out string) string {
	m := airportChannelRe.FindStringSubmatch(out)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(strings.SplitN(m[1], ",", 2)[0])
}

// parseNmcliChannel scans terse nmcli output for the active row ("yes:44").
func parseNmcliChannel(out string) string {
	for _, line := range strings.Split(out, "\n") {
		active, channel, ok := strings.Cut(line, ":")
		if !ok || active != "yes" {
			continue
		}
		if channel = strings.TrimSpace(channel); channel != "" {
			return channel
		}
	}
	return ""
}

func parseIwconfigChannel(out string) string {
	if m := iwconfigChannelRe.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return ""
}
