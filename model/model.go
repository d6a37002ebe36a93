// Package model derives the per-symbol probability distribution of a
// source text, the input of the Huffman coder.
package model

// Probabilities counts every code point of source and returns its relative
// frequency. An empty source yields an empty map.
func Probabilities(source string) map[rune]float64 {
	symbols := []rune(source)
	if len(symbols) == 0 {
		return map[rune]float64{}
	}
	counts := make(map[rune]int)
	for _, sym := range symbols {
		counts[sym]++
	}
	total := float64(len(symbols))
	probs := make(map[rune]float64, len(counts))
	for sym, cnt := range counts {
		probs[sym] = float64(cnt) / total
	}
	return probs
}
