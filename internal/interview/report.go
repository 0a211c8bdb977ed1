package interview

import "fmt"

type BasicReport struct {
	SessionID         string   `json:"sessionId"`
	Track             string   `json:"track"`
	Score             int      `json:"score"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
	Feedback          string   `json:"feedback"`
	RecommendedCourse string   `json:"recommendedCourse"`
}

type RoundScore struct {
	Round    int    `json:"round"`
	Title    string `json:"title"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

type RealReport struct {
	SessionID      string       `json:"sessionId"`
	SelectedTech   string       `json:"selectedTech"`
	OverallScore   int          `json:"overallScore"`
	RoundScores    []RoundScore `json:"roundScores"`
	Strengths      []string     `json:"strengths"`
	Improvements   []string     `json:"improvements"`
	Recommendation string       `json:"recommendation"`
	NextSteps      []string     `json:"nextSteps"`
}

type tierText struct {
	strengths    []string
	improvements []string
	message      string
}

var basicTiers = map[Tier]tierText{
	TierStrong: {
		strengths: []string{
			"Clear and detailed communication",
			"Strong understanding of core concepts",
			"Genuine enthusiasm for the field",
		},
		improvements: []string{
			"Add more concrete examples from real projects",
			"Explore advanced topics to deepen your expertise",
		},
		message: "Excellent performance! You show strong potential for the %s program.",
	},
	TierGood: {
		strengths: []string{
			"Good foundational knowledge",
			"Willingness to learn",
			"Reasonable communication skills",
		},
		improvements: []string{
			"Give more detailed answers with examples",
			"Strengthen your technical vocabulary",
		},
		message: "Good effort! With some preparation you will do well in the %s program.",
	},
	TierDeveloping: {
		strengths: []string{
			"Interest in learning",
			"Honest answers",
			"Potential for growth",
		},
		improvements: []string{
			"Expand your answers with more detail",
			"Build foundational knowledge before the program starts",
		},
		message: "Thanks for completing the interview. The %s program will help you build a solid foundation.",
	},
}

// BuildBasicReport scores a consumed basic session.
func BuildBasicReport(s *Session) BasicReport {
	t := LookupTrack(s.Track)
	score := ScoreBasic(t.Key, s.AllAnswers())
	txt := basicTiers[TierFor(score)]
	return BasicReport{
		SessionID:         s.ID,
		Track:             t.Key,
		Score:             score,
		Strengths:         append([]string(nil), txt.strengths...),
		Improvements:      append([]string(nil), txt.improvements...),
		Feedback:          fmt.Sprintf(txt.message, t.Name),
		RecommendedCourse: t.Course,
	}
}

var roundFeedback = map[int]map[Tier]string{
	1: {
		TierStrong:     "Strong command of technical fundamentals.",
		TierGood:       "Solid technical basics with a few gaps to close.",
		TierDeveloping: "Review the core technical concepts and practise explaining them.",
	},
	2: {
		TierStrong:     "Excellent problem-solving approach with attention to performance.",
		TierGood:       "Reasonable problem-solving; consider trade-offs and scalability more explicitly.",
		TierDeveloping: "Practise breaking problems down and reasoning about efficiency.",
	},
	3: {
		TierStrong:     "Great communication and teamwork examples.",
		TierGood:       "Good behavioural answers; add more specific situations and outcomes.",
		TierDeveloping: "Prepare concrete stories about teamwork, challenges and learning.",
	},
}

var realTiers = map[Tier]struct {
	tierText
	nextSteps []string
}{
	TierStrong: {
		tierText: tierText{
			strengths: []string{
				"Strong technical knowledge",
				"Structured problem solving",
				"Clear, confident communication",
			},
			improvements: []string{
				"Go deeper into system design",
				"Quantify the impact of your past work",
			},
			message: "Strongly recommended: you are ready for advanced %s roles and projects.",
		},
		nextSteps: []string{
			"Apply for internship or junior developer positions",
			"Build an advanced portfolio project",
			"Practise system design interviews",
		},
	},
	TierGood: {
		tierText: tierText{
			strengths: []string{
				"Good grasp of fundamentals",
				"Logical thinking",
				"Willingness to learn",
			},
			improvements: []string{
				"Practise explaining optimisation trade-offs",
				"Add concrete examples to behavioural answers",
			},
			message: "Recommended: a structured %s program will take you to the next level.",
		},
		nextSteps: []string{
			"Enroll in the intermediate program",
			"Complete two hands-on projects",
			"Take another mock interview in four weeks",
		},
	},
	TierDeveloping: {
		tierText: tierText{
			strengths: []string{
				"Interest in technology",
				"Effort to answer every question",
				"Room for rapid growth",
			},
			improvements: []string{
				"Strengthen core programming concepts",
				"Practise problem solving regularly",
			},
			message: "Start with the foundation %s program to build your core skills.",
		},
		nextSteps: []string{
			"Enroll in the foundation program",
			"Practise coding exercises daily",
			"Retake the interview after completing the basics",
		},
	},
}

// BuildRealReport scores a consumed advanced session.
func BuildRealReport(s *Session) RealReport {
	rounds := make([]RoundScore, 0, RealFlow.Rounds)
	scores := make([]int, 0, RealFlow.Rounds)
	for r := 1; r <= RealFlow.Rounds; r++ {
		sc := ScoreRound(r, s.Answers[r])
		scores = append(scores, sc)
		rounds = append(rounds, RoundScore{
			Round:    r,
			Title:    RoundTitle(r),
			Score:    sc,
			Feedback: roundFeedback[r][TierFor(sc)],
		})
	}

	overall := OverallScore(scores)
	txt := realTiers[TierFor(overall)]
	return RealReport{
		SessionID:      s.ID,
		SelectedTech:   s.Tech,
		OverallScore:   overall,
		RoundScores:    rounds,
		Strengths:      append([]string(nil), txt.strengths...),
		Improvements:   append([]string(nil), txt.improvements...),
		Recommendation: fmt.Sprintf(txt.message, TechLabel(s.Tech)),
		NextSteps:      append([]string(nil), txt.nextSteps...),
	}
}
