// Package lexer 将带标记的字符流切分为 token 序列
//
// 标记字面量形如 HLSTART{n}、HLEND{n}、ANNOT{n}。任何不构成
// 完整标记的子串（索引不是数字、花括号缺失、流末尾截断）都按
// 字面文本处理，扫描永不失败。
package lexer

import "strings"

// 标记前缀，含左花括号；索引数字与右花括号跟在其后
const (
	prefixStart = "HLSTART{"
	prefixEnd   = "HLEND{"
	prefixAnnot = "ANNOT{"
)

// Scan converts source into an ordered token sequence.
//
// Single forward pass, no lookahead beyond one marker's delimiters.
// Adjacent literal text is emitted as one maximal Text token per run.
func Scan(source string) []Token {
	tokens := make([]Token, 0)
	textStart := 0 // start of the pending literal run
	i := 0

	flushText := func(end int) {
		if end > textStart {
			tokens = append(tokens, Token{
				Kind:  KindText,
				Value: source[textStart:end],
				Start: textStart,
				End:   end,
			})
		}
	}

	for i < len(source) {
		kind, prefix, ok := markerAt(source, i)
		if !ok {
			i++
			continue
		}

		index, end, ok := parseIndex(source, i+len(prefix))
		if !ok {
			// 形似标记但索引部分非法：整段按字面文本处理
			i += len(prefix)
			continue
		}

		flushText(i)
		tokens = append(tokens, Token{
			Kind:  kind,
			Index: index,
			Start: i,
			End:   end,
		})
		i = end
		textStart = end
	}

	flushText(len(source))
	return tokens
}

// markerAt reports whether a marker prefix begins at position i.
func markerAt(source string, i int) (Kind, string, bool) {
	rest := source[i:]
	switch {
	case strings.HasPrefix(rest, prefixStart):
		return KindHighlightStart, prefixStart, true
	case strings.HasPrefix(rest, prefixEnd):
		return KindHighlightEnd, prefixEnd, true
	case strings.HasPrefix(rest, prefixAnnot):
		return KindAnnotation, prefixAnnot, true
	}
	return KindText, "", false
}

// parseIndex reads a non-empty decimal digit run starting at pos,
// followed by the closing brace. Returns the index and the byte
// offset just past the brace.
func parseIndex(source string, pos int) (int, int, bool) {
	j := pos
	index := 0
	for j < len(source) && source[j] >= '0' && source[j] <= '9' {
		index = index*10 + int(source[j]-'0')
		j++
	}
	if j == pos || j >= len(source) || source[j] != '}' {
		return 0, 0, false
	}
	return index, j + 1, true
}
