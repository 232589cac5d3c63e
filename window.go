package main

import "fmt"

// selectWindow returns the start offset of the window of the given length
// with the highest summed quality. Ties go to the earliest offset.
//
// Offsets are scanned over [0, len(qual)-window), so the last legal window
// is never chosen unless it is also the only one.
func selectWindow(qual []byte, window int) int {
	if window <= 0 || len(qual) < window {
		panic(fmt.Sprintf("selectWindow: quality length %d shorter than window %d", len(qual), window))
	}

	step := len(qual) - window
	maxQ, idx := 0, 0
	for i := 0; i < step; i++ {
		currentQ := windowSum(qual[i : i+window])
		if currentQ > maxQ {
			maxQ = currentQ
			idx = i
		}
	}
	return idx
}

func windowSum(qual []byte) int {
	total := 0
	for _, q := range qual {
		total += int(q)
	}
	return total
}
