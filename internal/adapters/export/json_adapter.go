package export

import (
	"context"
	"encoding/json"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	"github.com/SscSPs/factory_ops_app/internal/core/ports"
)

// JSONAdapter renders the payload as-is.
type JSONAdapter struct{}

var _ ports.ExportAdapter = JSONAdapter{}

func (JSONAdapter) Format() string { return "json" }

func (JSONAdapter) Render(_ context.Context, payload domain.ExportPayload) (domain.Artifact, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{
		Filename:    artifactName(payload, "json"),
		ContentType: "application/json",
		Data:        append(data, '\n'),
	}, nil
}
