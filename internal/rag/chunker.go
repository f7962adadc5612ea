package rag

// ChunkText splits text into overlapping fixed-size windows. Consecutive
// windows share `overlap` characters and the last window may be shorter
// than `size`. Windows are measured in runes so a boundary never lands
// inside a multi-byte sequence, but there is no awareness of word or
// sentence boundaries; that keeps ingest and retrieval symmetric and cheap.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		// step must stay positive or the window never advances
		overlap = size - 1
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(runes); start += size - overlap {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
