// Package gsession keeps the last layout between runs.
package gsession

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	sessionObject  = "session"
	layoutProperty = "layout"
)

// Session works without a storage manager too, it then remembers nothing
type Session struct {
	m *gdata.Manager
}

func Open(appName string) (*Session, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Session{}, fmt.Errorf("error open session storage: %w", err)
	}
	return &Session{m: m}, nil
}

func (s *Session) SaveLayout(data []byte) error {
	if s.m == nil {
		return nil
	}
	if err := s.m.SaveObjectProp(sessionObject, layoutProperty, data); err != nil {
		return fmt.Errorf("error save layout: %w", err)
	}
	return nil
}

// LoadLayout returns the saved layout, ok is false when nothing was saved
func (s *Session) LoadLayout() ([]byte, bool, error) {
	if s.m == nil || !s.m.ObjectPropExists(sessionObject, layoutProperty) {
		return nil, false, nil
	}
	data, err := s.m.LoadObjectProp(sessionObject, layoutProperty)
	if err != nil {
		return nil, false, fmt.Errorf("error load layout: %w", err)
	}
	return data, true, nil
}
