package state

import (
	"encoding/json"
	"fmt"
	"time"
)

// ConnectorState is one persisted watermark row.
type ConnectorState struct {
	ID          uint      `gorm:"primaryKey"`
	ConnectorID string    `gorm:"column:connector_id;size:128;index"`
	Data        string    `gorm:"column:data;size:64"`
	Created     time.Time `gorm:"column:created;autoCreateTime"`
}

// TableName sets the table used by GORM.
func (ConnectorState) TableName() string {
	return "connector_states"
}

// Timestamp decodes the JSON payload. A nil result with nil error means the
// connector has never completed a run.
func (s *ConnectorState) Timestamp() (*time.Time, error) {
	if s.Data == "" {
		return nil, nil
	}
	var t time.Time
	if err := json.Unmarshal([]byte(s.Data), &t); err != nil {
		return nil, fmt.Errorf("malformed watermark payload %q: %w", s.Data, err)
	}
	return &t, nil
}

// SetTimestamp encodes the timestamp into the JSON payload.
func (s *ConnectorState) SetTimestamp(t time.Time) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return err
	}
	s.Data = string(payload)
	return nil
}
