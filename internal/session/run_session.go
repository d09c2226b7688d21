package session

import (
	"sync"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

// RunSession holds the scripts currently being viewed or exported. It is
// replaced wholesale by a new run or a load and emptied by Clear.
type RunSession struct {
	mu      sync.RWMutex
	scripts models.Scripts
	record  *models.RunRecord
}

func NewRunSession() *RunSession {
	return &RunSession{}
}

// Replace swaps in a new set of scripts. record may be nil for a run that
// has not been saved.
func (s *RunSession) Replace(scripts models.Scripts, record *models.RunRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = scripts.Clone()
	s.record = record
}

// LoadRecord makes record the active run.
func (s *RunSession) LoadRecord(record models.RunRecord) models.Scripts {
	scripts := Load(record)
	s.Replace(scripts, &record)
	return scripts
}

func (s *RunSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = nil
	s.record = nil
}

func (s *RunSession) Scripts() models.Scripts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scripts.Clone()
}

func (s *RunSession) Record() (models.RunRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return models.RunRecord{}, false
	}
	return *s.record, true
}

func (s *RunSession) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scripts) > 0
}
