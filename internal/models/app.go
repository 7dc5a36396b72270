package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Input          string  // User input field
	Cards          []Card  // Currently rendered recommendation cards
	ResultsVisible bool    // Whether the results area has been revealed
	ScrollOffset   int     // First visible line of the results area
	Notice         *Notice // Notice currently shown to the user
	NoticeID       uint64  // Core notice the UI last adopted
	Reveals        uint64  // Core reveal counter the UI last applied
	Status         string  // Status bar text
	Loading        bool    // Loading state from core
	LoadingDots    int     // Animation counter for loading dots
	ExampleIndex   int     // Next example query for Ctrl+E
	Revision       uint64  // Last state revision applied from core
	Width          int     // Terminal width
	Height         int     // Terminal height
	ServiceReady   bool    // Whether the recommendation service is configured
}
