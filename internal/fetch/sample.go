package fetch

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/logqio/logq/internal/domain"
)

// GenerateSample writes a deterministic sample log file for demos and
// fetcher tests. Timestamps start at the given time and advance by 1-30
// seconds per line; severities cycle through the rand stream. The same seed
// always produces the same file. Engine tests use hand-authored fixtures
// instead of this generator.
func GenerateSample(path string, start time.Time, lines int, seed int64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rng := rand.New(rand.NewSource(seed))
	severities := domain.Severities()
	w := bufio.NewWriter(f)
	ts := start.UTC()
	for i := 0; i < lines; i++ {
		ts = ts.Add(time.Duration(1+rng.Intn(30)) * time.Second)
		sev := severities[rng.Intn(len(severities))]
		if _, err := fmt.Fprintf(w, "[%s][%s] sample event %d from generator\n",
			ts.Format("2006-01-02 15:04:05"), sev, i+1); err != nil {
			return err
		}
	}
	return w.Flush()
}
