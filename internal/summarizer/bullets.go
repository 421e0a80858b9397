package summarizer

import "strings"

// SplitBullets turns raw model output into bullet lines: one bullet per
// sentence or clause. Newlines are hard boundaries; within a line the text
// splits after sentence-ending punctuation. There is no fixed bullet count;
// output that contains no punctuation at all becomes a single bullet.
func SplitBullets(raw string) []string {
	var bullets []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• \t"))
		if line == "" {
			continue
		}
		for _, sentence := range splitSentences(line) {
			if sentence != "" {
				bullets = append(bullets, sentence)
			}
		}
	}
	return bullets
}

// splitSentences cuts after '.', '!' or '?' when followed by whitespace or
// end of text. Trailing quote/bracket characters stay attached to their
// sentence.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		end := i + 1
		for end < len(runes) && (runes[end] == '"' || runes[end] == '\'' || runes[end] == ')' || runes[end] == ']') {
			end++
		}
		if end < len(runes) && runes[end] != ' ' && runes[end] != '\t' {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start:end]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
		i = end - 1
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}
