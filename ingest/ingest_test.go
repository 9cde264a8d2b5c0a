package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bearlink/repository"
)

// sectionChunker splits canonical text on blank lines, one chunk per
// section. Deterministic and cheap, which is all these tests need.
type sectionChunker struct{}

func (sectionChunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n\n")
}

type fakeEmbedder struct {
	calls int
	fail  bool
}

func (f *fakeEmbedder) Dimension() int { return 3 }

func (f *fakeEmbedder) GetEmbeddings(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("quota exceeded")
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = []float32{float32(len(text)), 0, 1}
	}
	return out, nil
}

type fakeRepo struct {
	recreated bool
	flushes   [][]repository.ProfilePoint
	points    []repository.ProfilePoint
	failFlush int // fail the nth flush (1-based), 0 = never
}

func (f *fakeRepo) Recreate(context.Context) error {
	f.recreated = true
	return nil
}

func (f *fakeRepo) Upsert(_ context.Context, points []repository.ProfilePoint) error {
	if f.failFlush > 0 && len(f.flushes)+1 == f.failFlush {
		return errors.New("store unavailable")
	}
	batch := make([]repository.ProfilePoint, len(points))
	copy(batch, points)
	f.flushes = append(f.flushes, batch)
	f.points = append(f.points, batch...)
	return nil
}

func (f *fakeRepo) Search(context.Context, []float32, int) ([]repository.ScoredPayload, error) {
	return nil, nil
}

func (f *fakeRepo) Scroll(context.Context, int) ([]repository.ProfilePayload, error) {
	return nil, nil
}

func writeProfiles(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func newTestIngestor(repo repository.ProfileVectorRepo, dir string, flushSize int) *Ingestor {
	return NewIngestor(zap.NewNop(), repo, &fakeEmbedder{}, sectionChunker{},
		dir, "linkedin_profiles_raw_*.json", flushSize)
}

func TestRunSkipsProfilesWithoutID(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `[
		{"id": "p1", "name": "Ada Lovelace", "position": "Engineer", "about": "", "experience": []},
		{"id": "", "name": "Nameless", "position": "Ghost"}
	]`)

	repo := &fakeRepo{}
	total, err := newTestIngestor(repo, dir, 100).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, repo.recreated)
	assert.Equal(t, 1, total)
	require.Len(t, repo.points, 1)
	assert.Equal(t, "p1", repo.points[0].Payload.ProfileID)
	assert.Equal(t, uint64(0), repo.points[0].ID)
	assert.Equal(t, "Ada Lovelace — Engineer", repo.points[0].Payload.Text)
}

func TestRunAssignsMonotonicIDsAcrossSkips(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `[
		{"id": "p1", "name": "A", "position": "x", "about": "bio one"},
		{"id": "", "name": "skipped"},
		{"id": "p2", "name": "B", "position": "y", "about": "bio two"},
		{"id": "p3", "name": "C", "position": "z"}
	]`)

	repo := &fakeRepo{}
	total, err := newTestIngestor(repo, dir, 100).Run(context.Background())
	require.NoError(t, err)

	// p1 and p2 chunk into header+about, p3 into header only.
	assert.Equal(t, 5, total)
	require.Len(t, repo.points, 5)
	for i, p := range repo.points {
		assert.Equal(t, uint64(i), p.ID)
	}
	assert.Equal(t, "p1", repo.points[0].Payload.ProfileID)
	assert.Equal(t, "p2", repo.points[2].Payload.ProfileID)
	assert.Equal(t, "p3", repo.points[4].Payload.ProfileID)
}

func TestRunConcatenatesAllSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `[{"id": "p1", "name": "A", "position": "x"}]`)
	writeProfiles(t, dir, "linkedin_profiles_raw_2.json", `[{"id": "p2", "name": "B", "position": "y"}]`)

	repo := &fakeRepo{}
	total, err := newTestIngestor(repo, dir, 100).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestRunFlushesEveryBatch(t *testing.T) {
	dir := t.TempDir()
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 7; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id": "p%d", "name": "N%d", "position": "x"}`, i, i)
	}
	sb.WriteString("]")
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", sb.String())

	repo := &fakeRepo{}
	total, err := newTestIngestor(repo, dir, 3).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, total)
	require.Len(t, repo.flushes, 3)
	assert.Len(t, repo.flushes[0], 3)
	assert.Len(t, repo.flushes[1], 3)
	assert.Len(t, repo.flushes[2], 1)
}

func TestRunAbortsOnUnparsableFile(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `{"not": "an array"`)

	repo := &fakeRepo{}
	_, err := newTestIngestor(repo, dir, 100).Run(context.Background())
	require.Error(t, err)
	assert.False(t, repo.recreated, "ingestion must abort before any writes")
}

func TestRunSurfacesEmbeddingFailure(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `[{"id": "p1", "name": "A", "position": "x"}]`)

	repo := &fakeRepo{}
	ing := NewIngestor(zap.NewNop(), repo, &fakeEmbedder{fail: true}, sectionChunker{},
		dir, "linkedin_profiles_raw_*.json", 100)

	_, err := ing.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p1")
	assert.Empty(t, repo.points)
}

func TestRunSurfacesFlushFailure(t *testing.T) {
	dir := t.TempDir()
	writeProfiles(t, dir, "linkedin_profiles_raw_1.json", `[
		{"id": "p1", "name": "A", "position": "x"},
		{"id": "p2", "name": "B", "position": "y"}
	]`)

	repo := &fakeRepo{failFlush: 1}
	_, err := newTestIngestor(repo, dir, 1).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush")
}

func TestLoadProfilesMissingDirYieldsNoProfiles(t *testing.T) {
	profiles, err := LoadProfiles(filepath.Join(t.TempDir(), "missing"), "linkedin_profiles_raw_*.json")
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
