package markdown

import "bytes"

// WordsPerMinute is the reading speed used to estimate reading time.
const WordsPerMinute = 200

// WordCount returns the number of whitespace-delimited words in body.
func WordCount(body []byte) int {
	return len(bytes.Fields(body))
}

// ReadingTime estimates the minutes needed to read body, rounding up.
// A blank body reads in zero minutes; anything else takes at least one.
func ReadingTime(body []byte) int {
	words := WordCount(body)
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
