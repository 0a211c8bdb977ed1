package interview

import "strings"

const DefaultTrack = "fullstack"

type Track struct {
	Key       string
	Name      string
	Course    string
	Questions []string
	Keywords  []string
}

var tracks = map[string]Track{
	"frontend": {
		Key:    "frontend",
		Name:   "Frontend Development",
		Course: "Frontend Development with React",
		Questions: []string{
			"Tell us about yourself and why you want to pursue frontend development.",
			"Which frontend technologies have you worked with so far, and what did you build with them?",
			"How do you make sure a web page looks good on both mobile and desktop screens?",
			"Describe a user interface you admire and explain what makes it effective.",
			"Where do you see yourself professionally one year after completing this program?",
		},
		Keywords: []string{"react", "javascript", "typescript", "html", "css", "ui", "ux", "responsive", "component", "interface", "user", "dom"},
	},
	"backend": {
		Key:    "backend",
		Name:   "Backend Development",
		Course: "Backend Engineering with Node.js",
		Questions: []string{
			"Tell us about yourself and why you want to pursue backend development.",
			"Which server-side languages or frameworks have you used, and for what?",
			"How would you explain what a REST API is to someone new to programming?",
			"Describe how you would store and retrieve data for a simple blogging platform.",
			"Where do you see yourself professionally one year after completing this program?",
		},
		Keywords: []string{"api", "server", "database", "sql", "node", "rest", "scalab", "microservice", "cache", "security", "authentication"},
	},
	"fullstack": {
		Key:    "fullstack",
		Name:   "Full Stack Development",
		Course: "Full Stack Web Development (MERN)",
		Questions: []string{
			"Tell us about yourself and why you want to become a full stack developer.",
			"Which parts of web development, frontend or backend, do you feel most comfortable with today?",
			"Walk us through how a request travels from the browser to the database and back.",
			"Describe a project you built or would like to build end to end.",
			"Where do you see yourself professionally one year after completing this program?",
		},
		Keywords: []string{"frontend", "backend", "full stack", "api", "database", "react", "node", "javascript", "deploy", "integration"},
	},
	"data-science": {
		Key:    "data-science",
		Name:   "Data Science",
		Course: "Data Science and Machine Learning",
		Questions: []string{
			"Tell us about yourself and why you are interested in data science.",
			"Which tools or languages have you used to analyse data?",
			"How would you explain a machine learning model to a non-technical stakeholder?",
			"Describe a dataset you worked with and the insight you found in it.",
			"Where do you see yourself professionally one year after completing this program?",
		},
		Keywords: []string{"data", "python", "model", "statistic", "machine learning", "pandas", "analysis", "visualization", "dataset", "algorithm"},
	},
	"devops": {
		Key:    "devops",
		Name:   "DevOps & Cloud",
		Course: "DevOps and Cloud Engineering",
		Questions: []string{
			"Tell us about yourself and why you are interested in DevOps and cloud engineering.",
			"Which cloud platforms or infrastructure tools have you used?",
			"How would you explain continuous integration and delivery to a new teammate?",
			"Describe how you would monitor an application running in production.",
			"Where do you see yourself professionally one year after completing this program?",
		},
		Keywords: []string{"docker", "kubernetes", "ci/cd", "pipeline", "cloud", "aws", "monitoring", "automation", "infrastructure", "deploy"},
	},
}

var enthusiasmWords = []string{"excited", "passionate", "love", "enjoy", "interested", "motivated"}

// LookupTrack resolves a track key, falling back to the default track.
func LookupTrack(key string) Track {
	if t, ok := tracks[strings.ToLower(strings.TrimSpace(key))]; ok {
		return t
	}
	return tracks[DefaultTrack]
}

// BasicQuestions returns a copy of the question bank for the track.
func BasicQuestions(track string) []string {
	return append([]string(nil), LookupTrack(track).Questions...)
}

func TrackKeys() []string {
	return []string{"frontend", "backend", "fullstack", "data-science", "devops"}
}
