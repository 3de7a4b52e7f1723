package translation

// DefaultChunkSize is the largest chunk, in characters, sent in one translation call.
const DefaultChunkSize = 5000

// Chunk is a contiguous slice of the source text. Start and End are rune
// offsets, End exclusive.
type Chunk struct {
	Text  string
	Start int
	End   int
}

// sentenceEnds are the terminators a chunk may be cut after when no
// paragraph break fits in the window.
var sentenceEnds = map[rune]bool{
	'.':  true,
	'!':  true,
	'?':  true,
	'۔':  true, // Urdu full stop
	'؟':  true, // Arabic question mark
	'।':  true, // Devanagari danda
	'\n': true,
}

// Split partitions text into chunks of at most size runes. Each cut falls
// after the last paragraph break in the back half of the window, else after
// the last sentence terminator there, else at the window edge. Concatenating
// the chunk texts yields text exactly.
func Split(text string, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	runes := []rune(text)
	var chunks []Chunk

	for pos := 0; pos < len(runes); {
		end := pos + size
		if end >= len(runes) {
			chunks = append(chunks, Chunk{Text: string(runes[pos:]), Start: pos, End: len(runes)})
			break
		}
		cut := boundary(runes[pos:end])
		chunks = append(chunks, Chunk{Text: string(runes[pos : pos+cut]), Start: pos, End: pos + cut})
		pos += cut
	}
	return chunks
}

// boundary returns the cut length within window. Boundaries that would
// leave a chunk of half the window or less are ignored.
func boundary(window []rune) int {
	minCut := len(window) / 2
	for i := len(window) - 1; i > 0 && i+1 > minCut; i-- {
		if window[i] == '\n' && window[i-1] == '\n' {
			return i + 1
		}
	}
	for i := len(window) - 1; i >= 0 && i+1 > minCut; i-- {
		if sentenceEnds[window[i]] {
			return i + 1
		}
	}
	return len(window)
}
