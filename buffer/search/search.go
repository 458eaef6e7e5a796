package search

// SearchHex returns every offset in data where the pattern matches.
// Wildcard elements match any byte. Overlapping matches are all
// reported. Plain O(n*m) scan; fine for interactive file sizes.
func SearchHex(data []byte, pattern []PatternElement) []int {
	m := len(pattern)
	if m == 0 || m > len(data) {
		return nil
	}
	var matches []int
	for i := 0; i+m <= len(data); i++ {
		hit := true
		for j := 0; j < m; j++ {
			if !pattern[j].Wildcard && pattern[j].Value != data[i+j] {
				hit = false
				break
			}
		}
		if hit {
			matches = append(matches, i)
		}
	}
	return matches
}

// SearchASCII returns every offset where query occurs in data as raw
// bytes. When caseSensitive is false, ASCII letters compare case-folded
// per byte.
func SearchASCII(data []byte, query string, caseSensitive bool) []int {
	q := []byte(query)
	m := len(q)
	if m == 0 || m > len(data) {
		return nil
	}
	var matches []int
	for i := 0; i+m <= len(data); i++ {
		hit := true
		for j := 0; j < m; j++ {
			a, b := data[i+j], q[j]
			if !caseSensitive {
				a, b = foldByte(a), foldByte(b)
			}
			if a != b {
				hit = false
				break
			}
		}
		if hit {
			matches = append(matches, i)
		}
	}
	return matches
}

func foldByte(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
