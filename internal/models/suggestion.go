package models

// Suggestion is a single AI-generated location suggestion.
type Suggestion struct {
	Name   string `json:"name"`   // Location name
	Type   string `json:"type"`   // ex. Cafe, Park, Library
	Reason string `json:"reason"` // Why the location fits the request
}

// Suggestions is the structured payload the generative model is asked to return.
type Suggestions struct {
	Suggestions []Suggestion `json:"suggestions"`
}
