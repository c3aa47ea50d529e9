package resolver_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/lookup/internal/engine/catalog"
	"go.trai.ch/lookup/internal/engine/lookup"
	"go.trai.ch/lookup/internal/engine/resolver"
)

const (
	primary    = "openSUSE:Leap:15.0"
	projectA   = "ProjectA"
	projectB   = "ProjectB"
	workaround = "openSUSE:Leap:15.0:SLE-workarounds"
	factory    = "openSUSE:Factory"
	oldRelease = "openSUSE:Leap:42.3"
)

var now = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

func testConfig() domain.Config {
	cfg := domain.DefaultConfig()
	cfg.PrimaryProject = primary
	cfg.PreferenceOrder = []string{projectA, projectB, workaround, factory}
	cfg.DropIfVanishedFrom = []string{oldRelease}
	cfg.FactoryProject = factory
	return cfg
}

func key(project, pkg string) string { return project + "/" + pkg }

// fakeService is an in-memory build service.
type fakeService struct {
	mu        sync.Mutex
	listings  map[string][]string
	histories map[string][]domain.Revision
	deleted   map[string][]domain.Revision
	infos     map[string]*domain.SourceInfo
	metas     []domain.PackageMeta
	requests  map[string][]domain.PendingRequest
	failures  map[string]error
	lookupDoc []byte
	writes    [][]byte
	calls     []string
}

func newFakeService() *fakeService {
	return &fakeService{
		listings:  make(map[string][]string),
		histories: make(map[string][]domain.Revision),
		deleted:   make(map[string][]domain.Revision),
		infos:     make(map[string]*domain.SourceInfo),
		requests:  make(map[string][]domain.PendingRequest),
		failures:  make(map[string]error),
	}
}

// current lists pkg in the primary project with the given content hash.
func (f *fakeService) current(pkg, hash string) {
	f.listings[primary] = append(f.listings[primary], pkg)
	f.infos[key(primary, pkg)+"@"] = &domain.SourceInfo{Package: pkg, SrcMD5: "cur-" + pkg, VerifyMD5: hash}
}

// publish lists pkg in project with one revision per hash, oldest first.
func (f *fakeService) publish(project, pkg string, hashes ...string) {
	f.listings[project] = append(f.listings[project], pkg)
	f.histories[key(project, pkg)] = f.revisions(project, pkg, hashes)
}

// dropped records a deleted package history for project/pkg.
func (f *fakeService) dropped(project, pkg string, hashes ...string) {
	f.deleted[key(project, pkg)] = f.revisions(project, pkg, hashes)
}

func (f *fakeService) revisions(project, pkg string, hashes []string) []domain.Revision {
	revs := make([]domain.Revision, len(hashes))
	for i, h := range hashes {
		srcmd5 := fmt.Sprintf("%s-%s-%d", project, pkg, i+1)
		revs[i] = domain.Revision{
			Rev:    fmt.Sprint(i + 1),
			SrcMD5: srcmd5,
			Time:   now.Add(-30 * 24 * time.Hour).Add(time.Duration(i) * time.Hour),
		}
		f.infos[key(project, pkg)+"@"+srcmd5] = &domain.SourceInfo{Package: pkg, SrcMD5: srcmd5, VerifyMD5: h}
	}
	return revs
}

func (f *fakeService) touched(project, pkg string, at time.Time) {
	revs := f.histories[key(project, pkg)]
	revs[len(revs)-1].Time = at
}

func (f *fakeService) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeService) called(prefix string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (f *fakeService) SourcePackages(_ context.Context, project string) ([]string, error) {
	f.record("list %s", project)
	names, ok := f.listings[project]
	if !ok {
		return nil, domain.ErrRemoteNotFound
	}
	return names, nil
}

func (f *fakeService) SearchPackageMeta(_ context.Context, _ string) ([]domain.PackageMeta, error) {
	return f.metas, nil
}

func (f *fakeService) History(_ context.Context, project, pkg string, deleted bool) ([]domain.Revision, error) {
	f.record("history %s deleted=%t", key(project, pkg), deleted)
	src := f.histories
	if deleted {
		src = f.deleted
	}
	revs, ok := src[key(project, pkg)]
	if !ok {
		return nil, domain.ErrRemoteNotFound
	}
	return revs, nil
}

func (f *fakeService) SourceInfo(_ context.Context, project, pkg, rev string) (*domain.SourceInfo, error) {
	f.record("info %s@%s", key(project, pkg), rev)
	if err, ok := f.failures[key(project, pkg)]; ok {
		return nil, err
	}
	info, ok := f.infos[key(project, pkg)+"@"+rev]
	if !ok {
		return nil, domain.ErrRemoteNotFound
	}
	return info, nil
}

func (f *fakeService) LatestCommits(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeService) PendingRequests(
	_ context.Context,
	target domain.PackageRef,
	typ domain.RequestType,
) ([]domain.PendingRequest, error) {
	f.record("requests %s %s", target, typ)
	return f.requests[target.String()+"#"+string(typ)], nil
}

func (f *fakeService) ReadLookup(_ context.Context, _ string) ([]byte, error) {
	if f.lookupDoc == nil {
		return nil, domain.ErrRemoteNotFound
	}
	return f.lookupDoc, nil
}

func (f *fakeService) WriteLookup(_ context.Context, _ string, data []byte) error {
	f.writes = append(f.writes, append([]byte(nil), data...))
	return nil
}

// recorder is a ports.Logger keeping every line.
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *recorder) Debug(msg string) { r.add("DEBUG " + msg) }
func (r *recorder) Info(msg string)  { r.add("INFO " + msg) }
func (r *recorder) Warn(msg string)  { r.add("WARN " + msg) }
func (r *recorder) Error(err error)  { r.add("ERROR " + err.Error()) }

func (r *recorder) has(line string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if l == line {
			return true
		}
	}
	return false
}

func (r *recorder) contains(part string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, part) {
			return true
		}
	}
	return false
}

type fakeSubmitter struct {
	requests []domain.DeleteRequest
	err      error
}

func (s *fakeSubmitter) SubmitDeleteRequest(_ context.Context, req domain.DeleteRequest) (domain.RequestID, error) {
	if s.err != nil {
		return "", s.err
	}
	s.requests = append(s.requests, req)
	return "4242", nil
}

type noopSpan struct{}

func (noopSpan) End()                     {}
func (noopSpan) RecordError(error)        {}
func (noopSpan) SetAttribute(string, any) {}

type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type harness struct {
	svc       *fakeService
	log       *recorder
	session   *lookup.Session
	engine    *resolver.Engine
	submitter *fakeSubmitter
	clock     clockwork.FakeClock
}

func newHarness(t *testing.T, svc *fakeService, opts resolver.Options) *harness {
	t.Helper()
	return newHarnessWithConfig(t, svc, testConfig(), opts)
}

func newHarnessWithConfig(t *testing.T, svc *fakeService, cfg domain.Config, opts resolver.Options) *harness {
	t.Helper()
	ctx := context.Background()
	log := &recorder{}

	session, err := lookup.Load(ctx, svc, cfg.PrimaryProject, log)
	require.NoError(t, err)

	cat := catalog.New(svc, &cfg, log)
	idx, err := catalog.BuildMetadataIndex(ctx, svc, cfg.PrimaryProject)
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(now)
	sub := &fakeSubmitter{}
	rec := resolver.NewReclaimer(&cfg, svc, session, cat, sub, clock, log, resolver.ReclaimOptions{APIURL: "https://api.example.org"})

	return &harness{
		svc:       svc,
		log:       log,
		session:   session,
		engine:    resolver.NewEngine(&cfg, svc, session, cat, idx, rec, log, noopTracer{}, opts),
		submitter: sub,
		clock:     clock,
	}
}

func (h *harness) resolve(t *testing.T, pkg string) resolver.Outcome {
	t.Helper()
	out, err := h.engine.Resolve(context.Background(), pkg)
	require.NoError(t, err)
	return out
}
