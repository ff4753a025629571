// Package mcp exposes the two NPS predictors as MCP tools over the
// official go-sdk.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"npspredict/internal/feature"
	"npspredict/internal/logging"
	"npspredict/internal/predict"
)

// Server wraps the MCP SDK server with the two prediction tools. Tools
// are stateless; every call reloads its artifact bundle, so the server
// holds nothing but the flavor parameters.
type Server struct {
	MCPServer *sdkmcp.Server

	rf     predict.Predictor
	skynet predict.Predictor
}

// NewServer creates an MCP server wired to the default artifact
// directories (models/ and skynet_model/, relative to the working
// directory the client launched us in).
func NewServer() *Server {
	return NewServerWith(predict.RandomForest, predict.Skynet)
}

// NewServerWith wires explicit predictor flavors. Tests point these at
// fixture bundles.
func NewServerWith(rf, skynet predict.Predictor) *Server {
	s := &Server{rf: rf, skynet: skynet}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "npspredict", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "predict_nps_with_rf",
		Description: "Predict the NPS score from six pre-release defect metrics using the random forest model.",
	}, s.handlePredictRF)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "predict_nps_with_skynet",
		Description: "Predict the NPS score from six pre-release defect metrics using the skynet gradient boosting model.",
	}, s.handlePredictSkynet)
}

// --- Tool input/output types ---

type predictInput struct {
	PreDefectCount              float64 `json:"preDefectCount" jsonschema:"pre-release defect count"`
	PreClosedDefectCount        float64 `json:"preClosedDefectCount" jsonschema:"pre-release closed defect count"`
	PreResolvedDefectCount      float64 `json:"preResolvedDefectCount" jsonschema:"pre-release resolved defect count"`
	PreTrialDefectCount         float64 `json:"preTrialDefectCount" jsonschema:"pre-release trial defect count"`
	PreClosedTrialDefectCount   float64 `json:"preClosedTrialDefectCount" jsonschema:"pre-release closed trial defect count"`
	PreResolvedTrialDefectCount float64 `json:"preResolvedTrialDefectCount" jsonschema:"pre-release resolved trial defect count"`
}

type predictOutput struct {
	Prediction float64 `json:"prediction"`
}

func (in predictInput) features() feature.Input {
	return feature.Input{
		PreDefectCount:              in.PreDefectCount,
		PreClosedDefectCount:        in.PreClosedDefectCount,
		PreResolvedDefectCount:      in.PreResolvedDefectCount,
		PreTrialDefectCount:         in.PreTrialDefectCount,
		PreClosedTrialDefectCount:   in.PreClosedTrialDefectCount,
		PreResolvedTrialDefectCount: in.PreResolvedTrialDefectCount,
	}
}

// --- Tool handlers ---

func (s *Server) handlePredictRF(ctx context.Context, _ *sdkmcp.CallToolRequest, input predictInput) (*sdkmcp.CallToolResult, predictOutput, error) {
	return s.serve("predict_nps_with_rf", s.rf, input)
}

func (s *Server) handlePredictSkynet(ctx context.Context, _ *sdkmcp.CallToolRequest, input predictInput) (*sdkmcp.CallToolResult, predictOutput, error) {
	return s.serve("predict_nps_with_skynet", s.skynet, input)
}

func (s *Server) serve(tool string, p predict.Predictor, input predictInput) (*sdkmcp.CallToolResult, predictOutput, error) {
	logger := logging.New("mcp-predict")

	result, err := p.Predict(input.features())
	if err != nil {
		logger.Warn("prediction failed", "tool", tool, "flavor", p.Name, "error", err)
		return nil, predictOutput{}, fmt.Errorf("%s: %w", tool, err)
	}

	logger.Info("prediction served", "tool", tool, "flavor", p.Name, "prediction", result)
	return nil, predictOutput{Prediction: result}, nil
}
