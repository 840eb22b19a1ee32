// Package main summarizes games.csv files written by -output-dir runs.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pthm-cable/snake/telemetry"
)

func main() {
	bySession := flag.Bool("by-session", false, "Print one summary per session instead of one overall")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: sessionstats [-by-session] <output-dir>...")
	}

	var games []telemetry.GameRecord
	for _, dir := range flag.Args() {
		recs, err := telemetry.ReadGames(filepath.Join(dir, "games.csv"))
		if err != nil {
			log.Fatalf("failed to read %s: %v", dir, err)
		}
		games = append(games, recs...)
	}

	if !*bySession {
		printSummary(os.Stdout, "all", telemetry.Summarize(games))
		return
	}

	sessions := make(map[string][]telemetry.GameRecord)
	for _, g := range games {
		sessions[g.Session] = append(sessions[g.Session], g)
	}
	ids := make([]string, 0, len(sessions))
	for id := range sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		printSummary(os.Stdout, id, telemetry.Summarize(sessions[id]))
	}
}

func printSummary(w io.Writer, label string, s telemetry.Summary) {
	fmt.Fprintf(w, "%s: games=%d score=%.1f±%.1f max=%.0f level=%.2f ticks=%.1f\n",
		label, s.Games, s.MeanScore, s.StdScore, s.MaxScore, s.MeanLevel, s.MeanTicks)

	causes := make([]string, 0, len(s.Causes))
	for c := range s.Causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	for _, c := range causes {
		fmt.Fprintf(w, "  %-10s %d\n", c, s.Causes[c])
	}
}
