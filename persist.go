package flexknot

import "encoding/json"

// Snapshot is a serializable representation of a Session, for
// checkpointing a sampling run or handing the dataset to offline
// posterior-predictive tooling.
type Snapshot struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Order int       `json:"order"`
	Model Model     `json:"model"`
	Stdev float64   `json:"stdev"`
}

// Dump generates a serializable snapshot of the session.
func (s *Session) Dump() *Snapshot {
	return &Snapshot{
		X:     append([]float64(nil), s.x...),
		Y:     append([]float64(nil), s.y...),
		Order: s.order,
		Model: s.model,
		Stdev: s.stdev,
	}
}

// Restore builds a fresh session from a snapshot. The snapshot is
// revalidated in full, as it may come from an untrusted source. A zero
// stdev means the snapshot predates the field and keeps the default.
func Restore(snap *Snapshot) (*Session, error) {
	s, err := NewSession(snap.X, snap.Y, snap.Order, snap.Model)
	if err != nil {
		return nil, err
	}
	if snap.Stdev != 0 {
		if err := s.SetStdev(snap.Stdev); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MarshalJSON implements the json.Marshaler interface for Session.
func (s *Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Dump())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Session.
func (s *Session) UnmarshalJSON(bytes []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(bytes, &snap); err != nil {
		return err
	}

	restored, err := Restore(&snap)
	if err != nil {
		return err
	}
	*s = *restored
	return nil
}
