// Package quiz holds the static question bank, the parser for generated
// quiz output and the HTML/CSS code-match heuristic.
package quiz

import (
	"strings"

	"github.com/ignitai/ignitai-backend/internal/models"
)

const (
	DefaultCount = 5
	MaxCount     = 20
)

var bank = map[string][]models.QuizQuestion{
	"html": {
		{Question: "Which element is used for the largest heading?", Options: []string{"<h1>", "<h6>", "<head>", "<header>"}, Answer: "<h1>", Explanation: "Headings run from <h1> (largest) to <h6> (smallest)."},
		{Question: "Which attribute provides alternative text for an image?", Options: []string{"title", "alt", "src", "longdesc"}, Answer: "alt", Explanation: "alt is read by screen readers and shown when the image fails to load."},
		{Question: "Which element groups navigation links semantically?", Options: []string{"<div>", "<section>", "<nav>", "<menu>"}, Answer: "<nav>"},
	},
	"css": {
		{Question: "Which property changes the text color?", Options: []string{"font-color", "color", "text-color", "foreground"}, Answer: "color"},
		{Question: "Which display value lays out children along one axis with flexible sizing?", Options: []string{"block", "grid", "flex", "inline"}, Answer: "flex"},
		{Question: "Which selector has the highest specificity?", Options: []string{"#id", ".class", "div", "*"}, Answer: "#id", Explanation: "Id selectors outrank class and type selectors."},
	},
	"javascript": {
		{Question: "Which keyword declares a block-scoped variable that cannot be reassigned?", Options: []string{"var", "let", "const", "static"}, Answer: "const"},
		{Question: "What does === compare?", Options: []string{"Value only", "Type only", "Value and type", "Reference only"}, Answer: "Value and type"},
		{Question: "Which method adds an element to the end of an array?", Options: []string{"push", "pop", "shift", "unshift"}, Answer: "push"},
	},
	"react": {
		{Question: "Which hook holds local component state?", Options: []string{"useEffect", "useState", "useRef", "useMemo"}, Answer: "useState"},
		{Question: "What must every element in a rendered list have?", Options: []string{"an id", "a key", "a ref", "a name"}, Answer: "a key", Explanation: "Keys let React match list items between renders."},
	},
	"python": {
		{Question: "Which type is immutable?", Options: []string{"list", "dict", "tuple", "set"}, Answer: "tuple"},
		{Question: "What does len() return for a dict?", Options: []string{"Number of keys", "Number of values plus keys", "Memory size", "Always 0"}, Answer: "Number of keys"},
	},
	"general": {
		{Question: "What does HTTP status 404 mean?", Options: []string{"Server error", "Not found", "Unauthorized", "Redirect"}, Answer: "Not found"},
		{Question: "Which data structure is first-in first-out?", Options: []string{"Stack", "Queue", "Tree", "Heap"}, Answer: "Queue"},
		{Question: "What does Git's commit command do?", Options: []string{"Uploads to a remote", "Records a snapshot of staged changes", "Deletes a branch", "Merges branches"}, Answer: "Records a snapshot of staged changes"},
	},
}

var topicAliases = map[string]string{
	"js":          "javascript",
	"es6":         "javascript",
	"reactjs":     "react",
	"react.js":    "react",
	"html5":       "html",
	"css3":        "css",
	"py":          "python",
	"programming": "general",
}

func normalizeTopic(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if a, ok := topicAliases[t]; ok {
		return a
	}
	return t
}

// Fallback returns count questions drawn from the static bank for topics,
// cycling when the bank is smaller than count. Unknown topics use the
// general questions.
func Fallback(topics []string, count int) []models.QuizQuestion {
	count = ClampCount(count)

	var pool []models.QuizQuestion
	seen := map[string]bool{}
	for _, t := range topics {
		key := normalizeTopic(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		for _, q := range bank[key] {
			q.Topic = key
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		for _, q := range bank["general"] {
			q.Topic = "general"
			pool = append(pool, q)
		}
	}

	out := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		q := pool[i%len(pool)]
		q.Options = append([]string(nil), q.Options...)
		out = append(out, q)
	}
	return out
}

func ClampCount(n int) int {
	if n <= 0 {
		return DefaultCount
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
