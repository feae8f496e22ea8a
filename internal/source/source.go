// Package source fetches raw record sets for the view engine. Sources are
// external collaborators: they return arrays of loosely-typed records and may
// fail, in which case the engine is handed an empty list plus the error
// rather than being thrown into rendering.
package source

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// Source fetches the raw record set for one scope (screen name).
type Source interface {
	Fetch(ctx context.Context, scope string) ([]record.R, error)
}

// decodeRecords decodes a JSON payload that is either a bare array of
// objects or an envelope of the form {"data": [...]} - the upstream API uses
// both shapes depending on the endpoint.
func decodeRecords(data []byte) ([]record.R, error) {
	var bare []record.R
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var envelope struct {
		Data []record.R `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("decode records: payload is neither an array nor a data envelope")
	}
	return envelope.Data, nil
}
