package models

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusRunning Status = "RUNNING"
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// AnalysisType is the parsed form of the analysis_type input. Dispatch keys
// on this enum; raw strings are parsed exactly once at the tool boundary.
type AnalysisType string

const (
	AnalysisSummary      AnalysisType = "summary"
	AnalysisEntities     AnalysisType = "entities"
	AnalysisPOSTags      AnalysisType = "pos_tags"
	AnalysisDependencies AnalysisType = "dependencies"
	AnalysisSimilarity   AnalysisType = "similarity"
)

// AnalysisTypes lists every supported type in a stable order, for error
// messages and schema descriptions.
func AnalysisTypes() []AnalysisType {
	return []AnalysisType{
		AnalysisSummary,
		AnalysisEntities,
		AnalysisPOSTags,
		AnalysisDependencies,
		AnalysisSimilarity,
	}
}

// ParseAnalysisType validates a raw analysis_type value.
func ParseAnalysisType(s string) (AnalysisType, error) {
	for _, at := range AnalysisTypes() {
		if s == string(at) {
			return at, nil
		}
	}
	return "", fmt.Errorf("unknown analysis_type %q (valid: %v)", s, AnalysisTypes())
}

// Entity is a recognized named entity.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// POSTag pairs a token with its part-of-speech tag.
type POSTag struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Dependency is one arc of a dependency parse.
type Dependency struct {
	Text     string `json:"text"`
	Relation string `json:"relation"`
	Head     string `json:"head"`
}

// SummarySentence is one selected sentence with its document offset.
type SummarySentence struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// SummaryResult is the structured output of the extractive summarizer path.
type SummaryResult struct {
	Summary       string            `json:"summary"`
	Sentences     []SummarySentence `json:"sentences"`
	SentenceCount int               `json:"sentence_count"`
}

// SimilarityResult reports embedding cosine similarity of two texts.
type SimilarityResult struct {
	Similarity float64 `json:"similarity"`
	Dimensions int     `json:"dimensions"`
}

// Job is one queued analysis request and its lifecycle state.
type Job struct {
	ID        string         `json:"id"`
	Tool      string         `json:"tool"`
	Inputs    map[string]any `json:"inputs,omitempty"`
	Status    Status         `json:"status"`
	Result    *Result        `json:"result,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Result is a tool execution outcome.
type Result struct {
	Output any    `json:"output,omitempty"`
	Logs   string `json:"logs,omitempty"`
	Error  string `json:"error,omitempty"`
}
