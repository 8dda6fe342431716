package wifi

import "testing"

func TestParseAirportChannel(t *testing.T) {
	cases := map[string]struct {
		out  string
		want string
	}{
		"plain": {
			out:  "     agrCtlRSSI: -52\n           SSID: lab\n        channel: 44\n",
			want: "44",
		},
		"width suffix": {
			out:  "        channel: 149,1\n",
			want: "149",
		},
		"no channel line": {
			out:  "           SSID: lab\n",
			want: "",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := parseAirportChannel(tc.out); got != tc.want {
				t.Fatalf("parseAirportChannel = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseNmcliChannel(t *testing.T) {
	cases := map[string]struct {
		out  string
		want string
	}{
		"active row": {
			out:  "no:6\nyes:44\nno:11\n",
			want: "44",
		},
		"no active row": {
			out:  "no:6\nno:11\n",
			want: "",
		},
		"active row without channel": {
			out:  "yes:\nno:11\n",
			want: "",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := parseNmcliChannel(tc.out); got != tc.want {
				t.Fatalf("parseNmcliChannel = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseIwconfigChannel(t *testing.T) {
	out := "wlan0     IEEE 802.11  ESSID:\"lab\"\n" +
		"          Mode:Managed  Frequency:5.22 GHz  Channel:44\n"
	if got := parseIwconfigChannel(out); got != "44" {
		t.Fatalf("parseIwconfigChannel = %q, want 44", got)
	}
	if got := parseIwconfigChannel("lo        no wireless extensions.\n"); got != "" {
		t.Fatalf("parseIwconfigChannel = %q, want empty", got)
	}
}
