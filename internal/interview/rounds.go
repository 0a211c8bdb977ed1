package interview

import "strings"

const (
	QuestionsPerRound = 3
	DefaultTech       = "general"
)

type Round struct {
	Number    int      `json:"round"`
	Title     string   `json:"title"`
	Questions []string `json:"questions"`
}

var roundTitles = map[int]string{
	1: "Technical Basics",
	2: "Problem Solving",
	3: "Behavioral",
}

var roundBaselines = map[int]int{1: 50, 2: 50, 3: 60}

var roundKeywords = map[int][]string{
	1: {"algorithm", "data structure", "complexity", "function", "class", "object", "api", "database", "framework", "library", "variable", "component", "async"},
	2: {"optimi", "performance", "scal", "cache", "efficien", "complexity", "memory", "latency", "index", "load", "parallel", "trade-off"},
	3: {"team", "communicat", "collaborat", "lead", "learn", "challenge", "feedback", "conflict", "deadline", "responsib", "mentor"},
}

type techBank struct {
	label     string
	technical []string
	problems  []string
}

var techBanks = map[string]techBank{
	"react": {
		label: "React",
		technical: []string{
			"What is the virtual DOM and why does React use it?",
			"Explain the difference between props and state in a React component.",
			"How do hooks like useEffect change the way you handle side effects?",
		},
		problems: []string{
			"A list with thousands of rows renders slowly. How would you speed it up?",
			"How would you structure shared state for a large React application?",
			"A component re-renders far more often than expected. How do you investigate it?",
		},
	},
	"node": {
		label: "Node.js",
		technical: []string{
			"How does the Node.js event loop handle asynchronous operations?",
			"What is middleware in Express and how is it executed?",
			"How do you handle errors in asynchronous Node.js code?",
		},
		problems: []string{
			"Your API becomes slow under heavy traffic. How would you find and fix the bottleneck?",
			"How would you design rate limiting for a public API?",
			"How would you process a very large file upload without exhausting memory?",
		},
	},
	"python": {
		label: "Python",
		technical: []string{
			"What is the difference between a list and a tuple in Python?",
			"Explain how decorators work and give an example of using one.",
			"How does Python manage memory and garbage collection?",
		},
		problems: []string{
			"A data processing script takes hours to run. How would you make it faster?",
			"How would you find duplicate records in a dataset that does not fit in memory?",
			"How would you design a small service that schedules recurring jobs?",
		},
	},
	"java": {
		label: "Java",
		technical: []string{
			"What is the difference between an interface and an abstract class in Java?",
			"Explain how the JVM garbage collector decides what to reclaim.",
			"How do checked and unchecked exceptions differ?",
		},
		problems: []string{
			"A Java service shows growing memory usage over days. How do you investigate it?",
			"How would you make a shared counter safe under heavy concurrent access?",
			"How would you design caching for a read-heavy product catalogue?",
		},
	},
	DefaultTech: {
		label: "Software Development",
		technical: []string{
			"Explain the difference between a compiled and an interpreted language.",
			"What is an API and how do clients typically talk to one?",
			"How do you decide which data structure to use for a problem?",
		},
		problems: []string{
			"How would you approach debugging a bug you cannot reproduce locally?",
			"An application page takes ten seconds to load. How would you make it faster?",
			"How would you design a URL shortener that must handle millions of links?",
		},
	},
}

var behavioralQuestions = []string{
	"Tell us about a time you worked in a team to deliver something under a deadline.",
	"Describe a technical challenge you faced and how you overcame it.",
	"How do you keep learning and stay up to date with new technologies?",
}

func lookupTech(tech string) (string, techBank) {
	key := strings.ToLower(strings.TrimSpace(tech))
	switch key {
	case "nodejs", "node.js", "express":
		key = "node"
	case "reactjs", "react.js":
		key = "react"
	}
	if b, ok := techBanks[key]; ok {
		return key, b
	}
	return DefaultTech, techBanks[DefaultTech]
}

// TechLabel returns the display name for a technology, or the input itself
// when it is not one of the known banks.
func TechLabel(tech string) string {
	key, b := lookupTech(tech)
	if key == DefaultTech && strings.TrimSpace(tech) != "" && !strings.EqualFold(tech, DefaultTech) {
		return strings.TrimSpace(tech)
	}
	return b.label
}

// RealRounds builds the three-round question set for a technology.
func RealRounds(tech string) []Round {
	_, b := lookupTech(tech)
	return []Round{
		{Number: 1, Title: roundTitles[1], Questions: append([]string(nil), b.technical...)},
		{Number: 2, Title: roundTitles[2], Questions: append([]string(nil), b.problems...)},
		{Number: 3, Title: roundTitles[3], Questions: append([]string(nil), behavioralQuestions...)},
	}
}

func RoundTitle(round int) string { return roundTitles[round] }

// RoundsToQuestions converts rounds to the store's question snapshot shape.
func RoundsToQuestions(rounds []Round) map[int][]string {
	out := make(map[int][]string, len(rounds))
	for _, r := range rounds {
		out[r.Number] = r.Questions
	}
	return out
}
