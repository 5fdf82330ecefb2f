package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures one record per row-release decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions
}

// BoardingTrace collects decision records during one boarding episode.
type BoardingTrace struct {
	Config    TraceConfig
	Decisions []DecisionRecord
}

// NewBoardingTrace creates a BoardingTrace ready for recording.
func NewBoardingTrace(config TraceConfig) *BoardingTrace {
	return &BoardingTrace{
		Config:    config,
		Decisions: make([]DecisionRecord, 0),
	}
}

// RecordDecision appends a decision record. No-op when tracing is disabled.
func (bt *BoardingTrace) RecordDecision(record DecisionRecord) {
	if bt == nil || !bt.Config.Enabled() {
		return
	}
	bt.Decisions = append(bt.Decisions, record)
}
