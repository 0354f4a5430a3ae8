package dataset_test

import (
	"bufio"
	"context"
	"encoding/json"
	"image/gif"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blocksworld/stackgen/internal/blocks"
	"github.com/blocksworld/stackgen/internal/config"
	"github.com/blocksworld/stackgen/internal/dataset"
)

func TestMain(m *testing.M) {
	dataset.Log.SetLevel(logrus.ErrorLevel)
	dataset.Log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	os.Exit(m.Run())
}

// testConfig shrinks frames and disables videos so builds stay fast.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Render.ImageWidth = 320
	cfg.Render.ImageHeight = 240
	cfg.Render.BlockWidth = 30
	cfg.Render.BlockHeight = 20
	cfg.Video.Enabled = false
	cfg.Video.LiftFrames = 2
	cfg.Video.MoveFrames = 2
	cfg.Video.LowerFrames = 2
	cfg.Video.HoldFrames = 1
	cfg.Video.PauseFrames = 1
	return cfg
}

func TestTaskID(t *testing.T) {
	assert.Equal(t, "construction_stack_000000", dataset.TaskID("construction_stack", 0))
	assert.Equal(t, "construction_stack_000042", dataset.TaskID("construction_stack", 42))
}

func TestWriterLayout(t *testing.T) {
	tmp := t.TempDir()
	w, err := dataset.NewWriter(tmp, "construction_stack")
	require.NoError(t, err)
	defer w.Close()

	root := filepath.Join(tmp, "construction_stack_task")
	assert.Equal(t, root, w.Root())
	for _, dir := range []string{root, filepath.Join(root, "images"), filepath.Join(root, "videos")} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	img := w.ImagePath("construction_stack_000007", "first")
	assert.Equal(t, filepath.Join(root, "images", "construction_stack_000007_first.png"), img)
	assert.Equal(t, "images/construction_stack_000007_first.png", w.Rel(img))

	video := w.VideoPath("construction_stack_000007", "gif")
	assert.Equal(t, filepath.Join(root, "videos", "construction_stack_000007_ground_truth.gif"), video)
}

func TestWriterAppend(t *testing.T) {
	w, err := dataset.NewWriter(t.TempDir(), "construction_stack")
	require.NoError(t, err)

	in := dataset.Sample{
		TaskID:       "construction_stack_000000",
		RunID:        uuid.NewString(),
		Domain:       "construction_stack",
		Prompt:       "What is the minimum number of moves?",
		Difficulty:   "easy",
		OptimalMoves: 2,
		NumStacks:    3,
		NumBlocks:    3,
		InitialState: "01|2|",
		TargetState:  "0|2|1",
		Solution:     []blocks.Move{{From: 0, To: 2}},
		FirstImage:   "images/construction_stack_000000_first.png",
		FinalImage:   "images/construction_stack_000000_final.png",
	}
	require.NoError(t, w.Append(in))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(filepath.Join(w.Root(), "metadata.jsonl"))
	require.NoError(t, err)

	var out dataset.Sample
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestWriterConcurrentAppend(t *testing.T) {
	w, err := dataset.NewWriter(t.TempDir(), "construction_stack")
	require.NoError(t, err)

	const workers, perWorker = 8, 5
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				s := dataset.Sample{
					TaskID: dataset.TaskID("construction_stack", worker*perWorker+j),
					Domain: "construction_stack",
				}
				assert.NoError(t, w.Append(s))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, w.Close())

	f, err := os.Open(filepath.Join(w.Root(), "metadata.jsonl"))
	require.NoError(t, err)
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var s dataset.Sample
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &s), "line %d is not valid JSON", lines)
		lines++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, workers*perWorker, lines)
}

func TestBuilderBuild(t *testing.T) {
	cfg := testConfig()
	b, err := dataset.NewBuilder(cfg)
	require.NoError(t, err)

	w, err := dataset.NewWriter(t.TempDir(), cfg.Dataset.Domain)
	require.NoError(t, err)
	defer w.Close()

	rnd := rand.New(rand.NewPCG(7, 3))
	s, err := b.Build(context.Background(), 3, rnd, w)
	require.NoError(t, err)

	assert.Equal(t, "construction_stack_000003", s.TaskID)
	assert.Equal(t, b.RunID(), s.RunID)
	_, err = uuid.Parse(s.RunID)
	assert.NoError(t, err)
	assert.NotEmpty(t, s.Prompt)
	assert.Empty(t, s.Video)

	// Both frames exist and decode at the configured size.
	for _, rel := range []string{s.FirstImage, s.FinalImage} {
		f, err := os.Open(filepath.Join(w.Root(), rel))
		require.NoError(t, err)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 320, img.Bounds().Dx())
		assert.Equal(t, 240, img.Bounds().Dy())
	}

	// The recorded solution must replay from the initial state to the target.
	initial, err := blocks.ParseState(s.InitialState)
	require.NoError(t, err)
	states, err := blocks.Replay(initial, s.Solution)
	require.NoError(t, err)
	assert.Equal(t, s.TargetState, states[len(states)-1].Key())

	assert.Equal(t, len(s.Solution), s.OptimalMoves)
	assert.Equal(t, blocks.Classify(s.OptimalMoves).String(), s.Difficulty)
}

func TestBuilderBuildWithVideo(t *testing.T) {
	cfg := testConfig()
	cfg.Video.Enabled = true
	cfg.Video.Format = "gif"

	b, err := dataset.NewBuilder(cfg)
	require.NoError(t, err)
	require.True(t, b.VideosEnabled())

	w, err := dataset.NewWriter(t.TempDir(), cfg.Dataset.Domain)
	require.NoError(t, err)
	defer w.Close()

	rnd := rand.New(rand.NewPCG(11, 0))
	s, err := b.Build(context.Background(), 0, rnd, w)
	require.NoError(t, err)
	require.NotEmpty(t, s.Video)

	f, err := os.Open(filepath.Join(w.Root(), s.Video))
	require.NoError(t, err)
	defer f.Close()

	decoded, err := gif.DecodeAll(f)
	require.NoError(t, err)
	// hold + moves*(lift+move+lower+pause) + 2*hold with the shrunk counts.
	wantFrames := 1 + s.OptimalMoves*7 + 2
	assert.Len(t, decoded.Image, wantFrames)
}

func TestBuilderReproducible(t *testing.T) {
	cfg := testConfig()

	build := func(t *testing.T) dataset.Sample {
		b, err := dataset.NewBuilder(cfg)
		require.NoError(t, err)
		w, err := dataset.NewWriter(t.TempDir(), cfg.Dataset.Domain)
		require.NoError(t, err)
		defer w.Close()
		s, err := b.Build(context.Background(), 5, rand.New(rand.NewPCG(42, 5)), w)
		require.NoError(t, err)
		return s
	}

	a := build(t)
	b := build(t)

	// Everything derived from the seed matches; only the run identity differs.
	assert.Equal(t, a.TaskID, b.TaskID)
	assert.Equal(t, a.InitialState, b.InitialState)
	assert.Equal(t, a.TargetState, b.TargetState)
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.Prompt, b.Prompt)
	assert.Equal(t, a.Difficulty, b.Difficulty)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestNewBuilderRejectsBadPalette(t *testing.T) {
	cfg := testConfig()
	cfg.Render.Colors = []string{"#E74C3C", "oops"}

	_, err := dataset.NewBuilder(cfg)
	assert.Error(t, err)
}
