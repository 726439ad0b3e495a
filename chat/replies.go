package chat

import "strings"

const greeting = "Hello! I'm your AI travel assistant powered by advanced RAG technology. " +
	"I can help you plan the perfect itinerary for your next adventure using my comprehensive travel database. " +
	"Where would you like to go?"

const (
	noItinerary   = "I'm sorry, I couldn't generate an itinerary at this time."
	offlinePrefix = "I'm having trouble connecting to my travel database right now. "

	connectedLabel = "Connected to AI Travel Assistant"
	offlineLabel   = "Using offline mode"
)

var greetingSuggestions = []string{
	"Plan a 7-day trip to Japan",
	"Weekend getaway to Paris",
	"Family vacation to Orlando",
	"Romantic trip to Santorini",
}

// QuickActions are the one-tap prompts offered above the chat.
var QuickActions = []string{"Destinations", "Dates", "Travelers", "Flights", "Hotels", "Activities", "Dining"}

var cannedReplies = []struct {
	keyword string
	reply   string
}{
	{"japan", "Japan is an amazing destination! I'd recommend a 7-day itinerary covering Tokyo, Kyoto, and Osaka. " +
		"You could start in Tokyo for 3 days exploring Shibuya, Asakusa, and modern districts, then take the shinkansen " +
		"to Kyoto for 2 days of temples and traditional culture, and finish in Osaka for incredible food and nightlife. " +
		"Would you like me to detail specific attractions and restaurants?"},
	{"paris", "Paris is perfect for a romantic getaway! For a weekend trip, I suggest staying in the Marais district. " +
		"Day 1: Visit the Eiffel Tower, Seine river cruise, and dinner in Montmartre. Day 2: Louvre Museum, stroll " +
		"through Tuileries Garden, and explore Saint-Germain. Would you like restaurant recommendations or help with " +
		"booking accommodations?"},
	{"budget", "I'd be happy to help you plan within your budget! Could you tell me your approximate budget range and " +
		"destination preferences? I can suggest cost-effective accommodations, free activities, and budget-friendly " +
		"dining options."},
}

const defaultReply = "That sounds like a wonderful trip! To create the perfect itinerary for you, I'll need a few more " +
	"details. What's your travel style - adventure, relaxation, culture, or a mix? Also, what time of year are you " +
	"planning to travel and what's your approximate budget range?"

var cannedSuggestions = []struct {
	keyword     string
	suggestions []string
}{
	{"japan", []string{"Show me Tokyo attractions", "Best time to visit Japan", "Japanese food experiences", "Transportation in Japan"}},
	{"paris", []string{"Best Paris neighborhoods", "Museum recommendations", "Romantic dinner spots", "Day trips from Paris"}},
}

var defaultSuggestions = []string{"What's my budget?", "Best travel dates", "Group or solo travel?", "Activity preferences"}

// CannedReply is the offline answer for input, chosen by keyword.
func CannedReply(input string) string {
	input = strings.ToLower(input)
	for _, c := range cannedReplies {
		if strings.Contains(input, c.keyword) {
			return c.reply
		}
	}
	return defaultReply
}

// Suggestions returns the follow-up chips for input.
func Suggestions(input string) []string {
	input = strings.ToLower(input)
	for _, c := range cannedSuggestions {
		if strings.Contains(input, c.keyword) {
			return append([]string(nil), c.suggestions...)
		}
	}
	return append([]string(nil), defaultSuggestions...)
}
