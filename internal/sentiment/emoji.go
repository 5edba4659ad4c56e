package sentiment

import "strings"

// Emoji carry sentiment on social platforms more reliably than words do.
// The lists are fixed; whichever side has more occurrences wins.
var positiveEmojis = []string{
	"😊", "😄", "😃", "😁", "😆", "😂", "🤣", "😍", "🥰", "😘",
	"💕", "❤️", "💜", "🧡", "💛", "💚", "💙", "💯", "🔥", "✨",
	"🎉", "🎊", "🌟", "⭐", "👍", "👏", "🙌", "✅", "✔️",
}

var negativeEmojis = []string{
	"😢", "😭", "😞", "😔", "😟", "😕", "🙁", "☹️", "😣", "😖",
	"😫", "😩", "🥺", "😰", "😨", "😧", "😦", "😥", "😓", "😒",
	"🙄", "😤", "😠", "😡", "🤬", "👎", "💔", "🚫", "❌", "⚠️", "😱",
}

// emojiLabel classifies text by which emoji family dominates it.
func emojiLabel(text string) string {
	positive := 0
	for _, e := range positiveEmojis {
		if strings.Contains(text, e) {
			positive++
		}
	}
	negative := 0
	for _, e := range negativeEmojis {
		if strings.Contains(text, e) {
			negative++
		}
	}
	switch {
	case positive > negative:
		return Positive
	case negative > positive:
		return Negative
	default:
		return Neutral
	}
}
