package response

import (
	"bitumen_production/internal/domain/entities"
	"time"
)

// ProcessStatusResponse is {state: "idle"} when nothing boils.
type ProcessStatusResponse struct {
	State             string                    `json:"state"`
	BatchID           string                    `json:"batchId,omitempty"`
	StartedAt         *time.Time                `json:"startedAt,omitempty"`
	ElapsedSeconds    int64                     `json:"elapsedSeconds"`
	Inputs            *ConversionInputsResponse `json:"inputs,omitempty"`
	ProjectedOutputKg float64                   `json:"projectedOutputKg,omitempty"`
	ProjectedUnitCost float64                   `json:"projectedUnitCost,omitempty"`
	ObservedAt        time.Time                 `json:"observedAt"`
}

func FromProcessStatus(s entities.ProcessStatus) ProcessStatusResponse {
	resp := ProcessStatusResponse{
		State:      string(s.State),
		ObservedAt: s.ObservedAt,
	}
	if s.IsIdle() {
		resp.State = string(entities.ConversionStateIdle)
		return resp
	}
	resp.BatchID = s.BatchID
	resp.StartedAt = s.StartedAt
	resp.ElapsedSeconds = int64(s.Elapsed / time.Second)
	if s.Inputs != nil {
		in := FromConversionInputs(*s.Inputs)
		resp.Inputs = &in
	}
	resp.ProjectedOutputKg = s.ProjectedOutputKg.InexactFloat64()
	resp.ProjectedUnitCost = s.ProjectedUnitCost.InexactFloat64()
	return resp
}
