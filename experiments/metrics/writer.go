package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AgentConfig describes one configured strategy in an experiment.
type AgentConfig struct {
	ID      int    `yaml:"id"`
	Kind    string `yaml:"kind"` // random | lookahead | neural
	Samples int    `yaml:"samples,omitempty"`
	Seed    uint64 `yaml:"seed,omitempty"`
	Weights string `yaml:"weights,omitempty"` // Path to neural weights, neural only
}

// GameRecord is one game's row in the experiment output.
type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing black
	Agent2 int // AgentConfig.ID playing white
	GameMetric
}

// MoveRecord is one move's row in the experiment output.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer stores experiment records as CSV files under a base directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{{"id", "kind", "samples", "seed", "weights"}}
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Samples),
			strconv.FormatUint(c.Seed, 10),
			c.Weights,
		})
	}
	return w.writeFile("agent_configs.csv", rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{
		"id", "agent1", "agent2", "board_size", "winner", "reason",
		"start_time", "duration_ms", "total_moves",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			strconv.Itoa(r.BoardSize),
			r.Winner,
			r.Reason,
			r.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.Itoa(r.TotalMoves),
		})
	}
	return w.writeFile("game_records.csv", rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{{
		"game", "step", "player", "candidates", "samples", "playouts", "duration_us",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Samples),
			strconv.Itoa(r.Playouts),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	return w.writeFile("move_records.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	cw.Flush()
	return cw.Error()
}
