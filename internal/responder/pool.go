package responder

import "time"

// DefaultDelay is the simulated latency before a reply arrives.
const DefaultDelay = 1000 * time.Millisecond

// Pool holds the canned replies. Each one is equally likely.
var Pool = []string{
	"I'm ChatPTAtlas, a demo chat interface. I can help you explore various topics!",
	"That's an interesting question! As a demo application, I provide simulated responses.",
	"Great observation! This interface mimics a chat experience with AI.",
	"I understand what you're asking. In a production environment, this would connect to a real AI service.",
	"Thanks for chatting with ChatPTAtlas! This is a demonstration of a modern chat interface.",
}

// InPool reports whether text is one of the canned replies
func InPool(text string) bool {
	for _, r := range Pool {
		if r == text {
			return true
		}
	}
	return false
}
