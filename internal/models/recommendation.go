package models

import "strings"

// RecommendationItem is one product returned by the recommendation server.
// The client treats it as display-only data.
type RecommendationItem struct {
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	Weight       float64  `json:"weight"`    // kg
	SeatWidth    float64  `json:"seatWidth"` // cm
	Image        string   `json:"image,omitempty"`
	Keywords     []string `json:"keywords"`
}

// Envelope is the top-level object returned by both recommendation endpoints
type Envelope struct {
	Success         bool                 `json:"success"`
	Recommendations []RecommendationItem `json:"recommendations"`
	Message         string               `json:"message,omitempty"`
}

// QueryRequest is the body of POST /api/recommend
type QueryRequest struct {
	Query string `json:"query"`
}

// QuickRequest is the body of POST /api/quick-recommend
type QuickRequest struct {
	Type QuickType `json:"type"`
}

// QuickType is a predefined category understood by /api/quick-recommend.
// The values are the identifiers the server matches on.
type QuickType string

const (
	QuickMale        QuickType = "남성"
	QuickFemale      QuickType = "여성"
	QuickStandard    QuickType = "기본형"
	QuickLightweight QuickType = "경량형"
	QuickLarge       QuickType = "대형"
)

// QuickTypes lists the quick categories in key binding order (F1..F5)
var QuickTypes = []QuickType{QuickMale, QuickFemale, QuickStandard, QuickLightweight, QuickLarge}

var quickLabels = map[QuickType]string{
	QuickMale:        "Male",
	QuickFemale:      "Female",
	QuickStandard:    "Standard",
	QuickLightweight: "Lightweight",
	QuickLarge:       "Large",
}

func (q QuickType) Label() string {
	if label, ok := quickLabels[q]; ok {
		return label
	}
	return string(q)
}

// ParseQuickType accepts either the wire identifier or the English label
func ParseQuickType(s string) (QuickType, bool) {
	s = strings.TrimSpace(s)
	for _, q := range QuickTypes {
		if s == string(q) || strings.EqualFold(s, q.Label()) {
			return q, true
		}
	}
	return "", false
}

// Card is the render-ready form of a RecommendationItem
type Card struct {
	Name         string
	Manufacturer string
	Weight       float64
	SeatWidth    float64
	ImageURL     string
	NoImage      bool // image absent or failed to load
	Keywords     []string
}

// NoticeKind classifies what the user is being told
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeValidation
	NoticeApplication
	NoticeTransport
)

// Notice is a user-visible message, the terminal equivalent of an alert box
type Notice struct {
	Kind NoticeKind
	Text string
}

func (n Notice) IsError() bool {
	return n.Kind != NoticeInfo
}
