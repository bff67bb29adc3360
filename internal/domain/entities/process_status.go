package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessStatus is the read model served to kettle viewers. When no batch is
// boiling only State (idle) and ObservedAt are set.
type ProcessStatus struct {
	State             ConversionState   `json:"state"`
	BatchID           string            `json:"batch_id,omitempty"`
	StartedAt         *time.Time        `json:"started_at,omitempty"`
	Elapsed           time.Duration     `json:"elapsed"`
	Inputs            *ConversionInputs `json:"inputs,omitempty"`
	ProjectedOutputKg decimal.Decimal   `json:"projected_output_kg"`
	ProjectedUnitCost decimal.Decimal   `json:"projected_unit_cost"`
	ObservedAt        time.Time         `json:"observed_at"`
}

func (s ProcessStatus) IsIdle() bool { return s.State != ConversionStateBoiling }

type ProcessEventType string

const (
	ProcessEventStarted  ProcessEventType = "started"
	ProcessEventFinished ProcessEventType = "finished"
)

// ProcessEvent is published after a state transition has been committed.
type ProcessEvent struct {
	Type    ProcessEventType `json:"type"`
	BatchID string           `json:"batch_id"`
	At      time.Time        `json:"at"`
}
