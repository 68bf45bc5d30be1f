package registration

import (
	"time"

	"github.com/zekroTJA/timedmap"
)

// WizardStore holds live wizards. Abandoned wizards fall out after the TTL;
// activity keeps them alive.
type WizardStore interface {
	Put(wizard *Wizard)
	Get(id string) (*Wizard, bool)
	Delete(id string)
}

type memoryWizardStore struct {
	wizards *timedmap.TimedMap
	ttl     time.Duration
}

func NewMemoryWizardStore(ttl time.Duration) WizardStore {
	return &memoryWizardStore{
		wizards: timedmap.New(time.Minute),
		ttl:     ttl,
	}
}

func (s *memoryWizardStore) Put(wizard *Wizard) {
	s.wizards.Set(wizard.ID(), wizard, s.ttl)
}

func (s *memoryWizardStore) Get(id string) (*Wizard, bool) {
	value := s.wizards.GetValue(id)
	if value == nil {
		return nil, false
	}
	// Touching a wizard pushes its expiry out.
	_ = s.wizards.Refresh(id, s.ttl)
	return value.(*Wizard), true
}

func (s *memoryWizardStore) Delete(id string) {
	s.wizards.Remove(id)
}
