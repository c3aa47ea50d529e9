// Package lookup holds the in-memory provenance map of one run and writes it
// back to the build service.
package lookup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/lookup/internal/core/domain"
	"go.trai.ch/lookup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FlushThreshold is the number of unflushed changes a session tolerates
// before FlushIfDue writes the document back.
const FlushThreshold = 50

const documentStart = "---\n"

// Session is the reconciliation state of one run: the provenance map of the
// primary project and the number of changes not yet written back.
type Session struct {
	svc     ports.BuildService
	project string
	logger  ports.Logger

	entries map[string]domain.Provenance
	changes int
}

// Load reads the lookup document of project. A missing document starts an
// empty session.
func Load(ctx context.Context, svc ports.BuildService, project string, logger ports.Logger) (*Session, error) {
	s := &Session{
		svc:     svc,
		project: project,
		logger:  logger,
		entries: make(map[string]domain.Provenance),
	}

	data, err := svc.ReadLookup(ctx, project)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteNotFound) {
			logger.Debug("no lookup document in " + project)
			return s, nil
		}
		return nil, err
	}

	if err := s.decode(data); err != nil {
		return nil, zerr.With(err, "project", project)
	}
	logger.Debug(fmt.Sprintf("loaded %d lookup entries from %s", len(s.entries), project))
	return s, nil
}

func (s *Session) decode(data []byte) error {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return zerr.Wrap(domain.ErrLookupParseFailed, err.Error())
	}

	for pkg, value := range raw {
		p, err := domain.ParseProvenance(value)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLookupParseFailed.Error()), "package", pkg)
		}
		if p.IsSet() {
			s.entries[pkg] = p
		}
	}
	return nil
}

// Get returns the stored provenance of pkg, or the Unset provenance.
func (s *Session) Get(pkg string) domain.Provenance {
	return s.entries[pkg]
}

// Set records p for pkg and counts one change.
func (s *Session) Set(pkg string, p domain.Provenance) {
	s.entries[pkg] = p
	s.changes++
}

// Remove deletes the entry of pkg. It counts a change and reports true only
// when an entry existed.
func (s *Session) Remove(pkg string) bool {
	if _, ok := s.entries[pkg]; !ok {
		return false
	}
	delete(s.entries, pkg)
	s.changes++
	return true
}

// Keys returns the packages with a stored entry in sorted order.
func (s *Session) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of stored entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// Changes returns the number of changes since the last write.
func (s *Session) Changes() int {
	return s.changes
}

// FlushIfDue writes the document when more than FlushThreshold changes are pending.
// It reports whether a write happened.
func (s *Session) FlushIfDue(ctx context.Context) (bool, error) {
	if s.changes <= FlushThreshold {
		return false, nil
	}
	if err := s.write(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Flush writes the document when any change is pending.
func (s *Session) Flush(ctx context.Context) error {
	if s.changes == 0 {
		s.logger.Info("no change to lookup.yml")
		return nil
	}
	return s.write(ctx)
}

func (s *Session) write(ctx context.Context) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	if err := s.svc.WriteLookup(ctx, s.project, data); err != nil {
		return err
	}
	s.logger.Debug(fmt.Sprintf("stored %d lookup entries (%d changes) in %s", len(s.entries), s.changes, s.project))
	s.changes = 0
	return nil
}

// Encode renders the whole map as a YAML document with sorted keys.
func (s *Session) Encode() ([]byte, error) {
	raw := make(map[string]string, len(s.entries))
	for pkg, p := range s.entries {
		raw[pkg] = p.String()
	}

	var buf bytes.Buffer
	buf.WriteString(documentStart)
	if len(raw) == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLookupWriteFailed.Error())
	}
	return buf.Bytes(), nil
}
