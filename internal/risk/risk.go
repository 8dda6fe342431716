// Package risk maps well-known ports to canned exposure warnings.
package risk

// notes covers services that regularly show up exposed on internal
// networks. Ports without an entry carry no canned warning.
var notes = map[int]string{
	21:   "FTP transmits credentials in plain text.",
	22:   "Confirm SSH uses keys + disable password logins if possible.",
	23:   "Telnet is insecure; replace with SSH.",
	25:   "Ensure SMTP is authenticated to prevent open relay abuse.",
	80:   "HTTP without TLS exposes sessions.",
	135:  "RPC often exploited by worms; limit to trusted hosts.",
	139:  "Legacy SMB over NetBIOS; disable if not required.",
	443:  "Verify TLS configuration and certificates.",
	445:  "SMB over TCP. Patch against EternalBlue-style exploits.",
	1433: "SQL Server exposed—enforce strong auth & network ACLs.",
	3306: "MySQL open to network. Restrict to application subnets.",
	3389: "RDP exposed. Require MFA + gateway/VPN.",
	5900: "VNC typically unencrypted. Use SSH tunnel or disable.",
	6379: "Redis unauthenticated by default; bind to localhost.",
	8080: "Check for admin consoles left exposed.",
}

// Note returns the warning for a port, if one exists.
func Note(port int) (string, bool) {
	note, ok := notes[port]
	return note, ok
}
