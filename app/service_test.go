package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acadkit/cohort/config"
	"github.com/acadkit/cohort/internal/eventbus"
)

const testRoster = `Roll,Name,Email
AI01,Ada,ada@x
AI02,Ben,ben@x
AI03,Cal,cal@x
CS01,Dee,dee@x
CS02,Eve,eve@x
MT01,Fox,fox@x
`

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(input, []byte(testRoster), 0o600))

	cfg := &config.Config{Input: input}
	cfg.Engine.Groups = 3
	cfg.Engine.SetDefaults()
	cfg.Export.Dir = filepath.Join(dir, "out")
	cfg.Export.Formats = []string{"csv", "zip"}
	cfg.Metrics.SetDefaults()
	return cfg, input
}

func TestServiceRunWritesArtifacts(t *testing.T) {
	cfg, input := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	rep, err := svc.Run(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, rep.Balanced, 3)
	require.Len(t, rep.Clustered, 3)
	require.Equal(t, 6, rep.Balanced.Size())
	require.Equal(t, 6, rep.Clustered.Size())

	for _, name := range []string{
		"statistics_balanced.csv",
		"statistics_clustered.csv",
		filepath.Join("department_wise", "AI.csv"),
		filepath.Join("balanced", "G1.csv"),
		"cohort.zip",
	} {
		_, err := os.Stat(filepath.Join(cfg.Export.Dir, name))
		require.NoError(t, err, name)
	}
}

func TestServiceRunPublishesEvents(t *testing.T) {
	cfg, input := testConfig(t)
	cfg.Export.Formats = []string{"csv"}
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	events := svc.Events()
	_, err = svc.Run(context.Background(), input)
	require.NoError(t, err)

	stages := make(map[eventbus.Stage]int)
	for len(events) > 0 {
		ev := <-events
		stages[ev.Stage]++
		require.NotEmpty(t, ev.RunID)
	}
	require.Equal(t, 1, stages[eventbus.StageIngested])
	require.Equal(t, 2, stages[eventbus.StagePartitioned])
	require.Equal(t, 1, stages[eventbus.StageExported])
}

func TestServiceRunRejectsUnknownFormat(t *testing.T) {
	cfg, _ := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	input := filepath.Join(t.TempDir(), "roster.txt")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o600))
	_, err = svc.Run(context.Background(), input)
	require.Error(t, err)
}

func TestServiceRunMissingInput(t *testing.T) {
	cfg, _ := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	_, err = svc.Run(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestCSVArtifactsDeterministic(t *testing.T) {
	cfg, input := testConfig(t)
	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	rep, err := svc.Run(context.Background(), input)
	require.NoError(t, err)

	a1, err := csvArtifacts(rep)
	require.NoError(t, err)
	a2, err := csvArtifacts(rep)
	require.NoError(t, err)
	require.Equal(t, a1, a2)

	for i := 1; i < len(a1); i++ {
		require.Less(t, a1[i-1].path, a1[i].path)
	}
}
