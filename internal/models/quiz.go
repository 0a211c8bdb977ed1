package models

type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty"`
}

type CodeMatchResult struct {
	Score     int    `json:"score"`
	HTMLScore *int   `json:"htmlScore,omitempty"`
	CSSScore  *int   `json:"cssScore,omitempty"`
	Passed    bool   `json:"passed"`
	Feedback  string `json:"feedback"`
	Source    string `json:"source"` // ai|heuristic
}
