package mcpserver

import (
	"context"
	"maps"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.trai.ch/dockq/internal/core/domain"
)

// ComputeInput is the input of the compute_docking_scores tool.
type ComputeInput struct {
	Molecules []string `json:"molecules" jsonschema:"SMILES strings to score"`
	Target    string   `json:"target" jsonschema:"protein target identifier, e.g. EGFR"`
}

// ScoreOutput is one ranked docking score.
type ScoreOutput struct {
	Rank     int     `json:"rank"`
	Molecule string  `json:"molecule"`
	Score    float64 `json:"score" jsonschema:"binding affinity in kcal/mol, more negative binds stronger"`
	Source   string  `json:"source" jsonschema:"cached, computed or mock"`
	Origin   string  `json:"origin,omitempty" jsonschema:"stored source of a cached score"`
	Outcome  string  `json:"outcome"`
}

// ComputeOutput is the result of the compute_docking_scores tool.
type ComputeOutput struct {
	Target   string        `json:"target"`
	Results  []ScoreOutput `json:"results"`
	Warnings []string      `json:"warnings,omitempty"`
}

// ExplainInput is the input of the explain tool.
type ExplainInput struct {
	Key string `json:"key" jsonschema:"target id, score category, process or molecular property"`
}

// ExplainOutput is the result of the explain tool.
type ExplainOutput struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// InterpretInput is the input of the interpret_score tool.
type InterpretInput struct {
	Score float64 `json:"score" jsonschema:"docking score in kcal/mol"`
}

// InterpretOutput is the result of the interpret_score tool.
type InterpretOutput struct {
	Score          float64 `json:"score"`
	Category       string  `json:"category"`
	Range          string  `json:"range"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

// TargetInput is the input of the get_target_info tool.
type TargetInput struct {
	TargetID string `json:"target_id" jsonschema:"protein target identifier"`
}

// TargetOutput is the result of the get_target_info tool.
type TargetOutput struct {
	TargetID        string   `json:"target_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DrugExamples    []string `json:"drug_examples"`
	BindingSite     string   `json:"binding_site"`
	TherapeuticArea string   `json:"therapeutic_area"`
	HasKnownDrugs   bool     `json:"has_known_drugs"`
}

// AnalyzeInput is the input of the analyze_docking_results tool.
type AnalyzeInput struct {
	Results map[string]float64 `json:"results" jsonschema:"docking scores keyed by SMILES"`
	Target  string             `json:"target,omitempty" jsonschema:"target the scores were computed against"`
}

// AnalyzeOutput is the result of the analyze_docking_results tool.
type AnalyzeOutput struct {
	Target          string         `json:"target,omitempty"`
	Count           int            `json:"count"`
	BestMolecule    string         `json:"best_molecule,omitempty"`
	BestScore       float64        `json:"best_score"`
	Average         float64        `json:"average"`
	Range           float64        `json:"range"`
	Distribution    map[string]int `json:"distribution"`
	Recommendations []string       `json:"recommendations"`
	TargetContext   *TargetOutput  `json:"target_context,omitempty"`
}

func computeHandler(svc Service) mcp.ToolHandlerFor[ComputeInput, ComputeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ComputeInput) (*mcp.CallToolResult, ComputeOutput, error) {
		ranking, err := svc.Rank(ctx, in.Molecules, in.Target)
		if err != nil {
			return nil, ComputeOutput{}, err
		}

		out := ComputeOutput{
			Target:   ranking.Target,
			Results:  make([]ScoreOutput, len(ranking.Records)),
			Warnings: ranking.Warnings,
		}
		for i, r := range ranking.Records {
			out.Results[i] = ScoreOutput{
				Rank:     i + 1,
				Molecule: r.Molecule,
				Score:    r.Score,
				Source:   string(r.Source),
				Origin:   string(r.Origin),
				Outcome:  string(r.Outcome),
			}
		}
		return nil, out, nil
	}
}

func explainHandler(svc Service) mcp.ToolHandlerFor[ExplainInput, ExplainOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ExplainInput) (*mcp.CallToolResult, ExplainOutput, error) {
		exp, err := svc.Explain(in.Key)
		if err != nil {
			return nil, ExplainOutput{}, err
		}
		return nil, ExplainOutput{Key: exp.Key, Kind: string(exp.Kind), Title: exp.Title, Text: exp.Text}, nil
	}
}

func interpretHandler(svc Service) mcp.ToolHandlerFor[InterpretInput, InterpretOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in InterpretInput) (*mcp.CallToolResult, InterpretOutput, error) {
		i := svc.Interpret(in.Score)
		return nil, InterpretOutput{
			Score:          i.Score,
			Category:       string(i.Bucket),
			Range:          i.Range,
			Description:    i.Description,
			Recommendation: i.Recommendation,
		}, nil
	}
}

func targetHandler(svc Service) mcp.ToolHandlerFor[TargetInput, TargetOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in TargetInput) (*mcp.CallToolResult, TargetOutput, error) {
		details, err := svc.Target(in.TargetID)
		if err != nil {
			return nil, TargetOutput{}, err
		}
		return nil, targetOutput(details), nil
	}
}

func analyzeHandler(svc Service) mcp.ToolHandlerFor[AnalyzeInput, AnalyzeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
		// Map order is random; sort so ties resolve the same way on every call.
		records := make([]domain.ScoreRecord, 0, len(in.Results))
		for _, m := range slices.Sorted(maps.Keys(in.Results)) {
			records = append(records, domain.ScoreRecord{Molecule: m, Target: in.Target, Score: in.Results[m]})
		}

		a := svc.Analyze(in.Target, records)
		out := AnalyzeOutput{
			Target:          a.Target,
			Count:           a.Count,
			Average:         a.Average,
			Range:           a.Range,
			Distribution:    make(map[string]int, len(a.Distribution)),
			Recommendations: a.Recommendations,
		}
		if a.Best != nil {
			out.BestMolecule = a.Best.Molecule
			out.BestScore = a.Best.Score
		}
		for bucket, n := range a.Distribution {
			out.Distribution[string(bucket)] = n
		}
		if a.TargetContext != nil {
			tc := targetOutput(*a.TargetContext)
			out.TargetContext = &tc
		}
		return nil, out, nil
	}
}

func targetOutput(d domain.TargetDetails) TargetOutput {
	drugs := d.DrugExamples
	if drugs == nil {
		drugs = []string{}
	}
	return TargetOutput{
		TargetID:        d.ID,
		Name:            d.Name,
		Description:     d.Description,
		DrugExamples:    drugs,
		BindingSite:     d.BindingSite,
		TherapeuticArea: d.TherapeuticArea,
		HasKnownDrugs:   d.HasKnownDrugs,
	}
}
