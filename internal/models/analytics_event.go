package models

import "time"

// Analytics event names emitted by the server and the web client.
const (
	EventPageView      = "page_view"
	EventTextAnalyzed  = "text_analyzed"
	EventModeChanged   = "mode_changed"
	EventShareAction   = "share_action"
	EventResetAnalysis = "reset_analysis"
	EventAnalysisError = "analysis_error"
	EventTextInput     = "text_input"
	EventResultViewed  = "result_viewed"
)

// AnalyticsEvent is one tracked usage event. Properties never carry the
// submitted text, only derived values such as mode, score and text length.
type AnalyticsEvent struct {
	Base
	Event      string                 `json:"event"                gorm:"size:64;not null;index"`
	Properties map[string]interface{} `json:"properties,omitempty" gorm:"serializer:json;type:longtext"`
	SessionID  string                 `json:"sessionId,omitempty"  gorm:"size:64"`
	UserAgent  string                 `json:"userAgent,omitempty"  gorm:"size:512"`
	Timestamp  time.Time              `json:"timestamp"            gorm:"index"`
}

func (AnalyticsEvent) TableName() string { return "analytics_events" }
