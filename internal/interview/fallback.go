package interview

var fallbackResponses = []string{
	"Thank you for that answer. Can you tell me a bit more about how you would apply this in a real project?",
	"That's a good start. What challenges do you think you would face with that approach?",
	"Interesting perspective. How would you explain that to a teammate who is new to the topic?",
	"Thanks for sharing. Let's move on to the next question.",
	"I appreciate the detail. How did you learn about this?",
}

// FallbackResponse picks a canned interviewer line when no generated reply is
// usable. The choice depends only on round and question index.
func FallbackResponse(round, questionIndex int) string {
	n := len(fallbackResponses)
	i := (round + questionIndex) % n
	if i < 0 {
		i += n
	}
	return fallbackResponses[i]
}
