package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match the
// expected report below. DO NOT MODIFY: changing these breaks the scenario.
const (
	burstUser     = "flapper@corp.example"
	burstDevice   = "3C-58-C2-55-D2-D8"
	quietUser     = "steady@corp.example"
	quietDevice   = "9A-10-0F-21-33-07"
	burstSessions = 40 // sessions for the burst user on the burst day
	noiseLines    = 5000
	randomSeed    = 1
)

// ### End - fixed configs

// main runs the e2e scenario: 001_burst_detection
//
// This scenario generates a synthetic RADIUS accounting log with one
// band-flapping user (many short sessions in one day), one quiet user and
// thousands of unrelated event lines, then runs the flapscan binary
// (FLAPSCAN_BIN, default ./flapscan) with -t 50 -c 5 and compares the
// report against the expected output byte for byte.
func main() {
	dir, err := os.MkdirTemp("", "flapscan-e2e-*")
	if err != nil {
		fatal("create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	logPath := filepath.Join(dir, "events.log")
	if err := os.WriteFile(logPath, []byte(generateLog()), 0644); err != nil {
		fatal("write log: %v", err)
	}

	binary := os.Getenv("FLAPSCAN_BIN")
	if binary == "" {
		binary = "./flapscan"
	}

	cmd := exec.Command(binary, "-f", logPath, "-t", "50", "-c", "5")
	output, err := cmd.Output()
	if err != nil {
		fatal("run %s: %v", binary, err)
	}

	want := expectedReport()
	got := strings.TrimRight(string(output), "\n")
	if got != want {
		fatal("report mismatch\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}

	fmt.Println("scenario 001_burst_detection: OK")
}

func generateLog() string {
	rng := rand.New(rand.NewSource(randomSeed))

	var sb strings.Builder

	// Burst user: burstSessions short sessions on 10/13/2021, plus a couple
	// of long ones that the -t 50 filter must drop.
	for i := 0; i < burstSessions; i++ {
		writeEvent(&sb, burstUser, burstDevice, fmt.Sprintf("10/13/2021 09:%02d:%02d", i/60, i%60), 3+i%5)
	}
	writeEvent(&sb, burstUser, burstDevice, "10/13/2021 11:00:00", 3600)
	writeEvent(&sb, burstUser, burstDevice, "10/13/2021 12:00:00", 7200)

	// Quiet user: two sessions on one day, never qualifying with -c 5.
	writeEvent(&sb, quietUser, quietDevice, "10/13/2021 08:00:00", 40)
	writeEvent(&sb, quietUser, quietDevice, "10/13/2021 17:30:00", 25)

	// Unrelated event kinds and garbage, interleaved noise.
	for i := 0; i < noiseLines; i++ {
		switch rng.Intn(3) {
		case 0:
			sb.WriteString(`<Event><Packet-Type data_type="0">1</Packet-Type><NAS-IP-Address data_type="3">10.0.0.1</NAS-IP-Address></Event>`)
		case 1:
			sb.WriteString(fmt.Sprintf("plain syslog noise line %d", i))
		case 2:
			sb.WriteString(`<Event><Event-Timestamp>not a timestamp</Event-Timestamp><Acct-Session-Time>x</Acct-Session-Time></Event>`)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeEvent(sb *strings.Builder, user, device, timestamp string, duration int) {
	fmt.Fprintf(sb,
		`<Event><Event-Timestamp data_type="4">%s</Event-Timestamp><Acct-Session-Time data_type="1">%d</Acct-Session-Time><Calling-Station-Id data_type="1">%s</Calling-Station-Id><User-Name data_type="1">%s</User-Name></Event>`,
		timestamp, duration, device, user)
	sb.WriteByte('\n')
}

func expectedReport() string {
	// 40 short sessions with durations 3,4,5,6,7 cycling; the five shortest
	// are the 3s. The two long sessions are filtered by -t 50.
	return fmt.Sprintf("User %s (device %s)\n13.10.2021: %d sessions. Shortest: 3s,3s,3s,3s,3s",
		burstUser, burstDevice, burstSessions)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
