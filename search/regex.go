package search

import (
	"fmt"
	"regexp/syntax"
)

// CompileRegex parses pattern with the standard library's regex grammar
// and lowers it to a dense byte-range DFA with unanchored-start, sticky
// search semantics: the pattern may begin matching at any byte offset
// within a gram (mirroring plain regexp.MatchString, which this same
// query path uses directly for the depth-0 case). The DFA itself leaves a
// match state again on the next byte; it is MultiHeadDFA's accepting heads
// that hold a match once satisfied, yielding every deeper leaf of the
// matched subtree regardless of what follows.
//
// Only a single-byte-per-rune view of the pattern is taken: literal runes
// and character-class bounds above 0xFF are clamped to 0xFF.
// This is a deliberate byte-level simplification (see DESIGN.md) rather
// than a full UTF-8 lowering — ASCII patterns, the overwhelmingly common
// case for word corpora, are unaffected.
func CompileRegex(pattern string) (*denseDFA, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegexSyntax, err)
	}
	re = re.Simplify()

	b := newNFABuilder()
	frag, err := compileRegexNode(b, re)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegexSyntax, err)
	}
	// Unanchored start: prepend "any byte, any number of times" so the
	// pattern can begin matching at any offset, not just byte 0.
	skip := b.star(b.byteRange(0, 255))
	frag = b.concat(skip, frag)
	prog := b.finish(frag, 0)
	return determinize(prog), nil
}

func compileRegexNode(b *nfaBuilder, re *syntax.Regexp) (fragment, error) {
	switch re.Op {
	case syntax.OpLiteral:
		return compileLiteral(b, re.Rune), nil

	case syntax.OpCharClass:
		return compileCharClass(b, re.Rune), nil

	case syntax.OpAnyChar:
		return b.byteRange(0, 255), nil

	case syntax.OpAnyCharNotNL:
		return compileCharClass(b, []rune{0, '\n' - 1, '\n' + 1, 255}), nil

	case syntax.OpConcat:
		return compileConcat(b, re.Sub)

	case syntax.OpAlternate:
		return compileAlternate(b, re.Sub)

	case syntax.OpStar:
		sub, err := compileRegexNode(b, re.Sub[0])
		if err != nil {
			return fragment{}, err
		}
		return b.star(sub), nil

	case syntax.OpPlus:
		sub, err := compileRegexNode(b, re.Sub[0])
		if err != nil {
			return fragment{}, err
		}
		return b.plus(sub), nil

	case syntax.OpQuest:
		sub, err := compileRegexNode(b, re.Sub[0])
		if err != nil {
			return fragment{}, err
		}
		return b.quest(sub), nil

	case syntax.OpCapture:
		return compileRegexNode(b, re.Sub[0])

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		// Anchors and zero-width assertions compile to an empty fragment and
		// are ignored: "^" and "$" do not restrict where a match starts or
		// ends, since the automaton is unanchored at both ends.
		return b.empty(), nil

	case syntax.OpNoMatch:
		return b.noMatch(), nil

	default:
		return fragment{}, fmt.Errorf("unsupported regex construct %v", re.Op)
	}
}

func compileLiteral(b *nfaBuilder, runes []rune) fragment {
	if len(runes) == 0 {
		return b.empty()
	}
	frag := literalByteFrag(b, runes[0])
	for _, r := range runes[1:] {
		frag = b.concat(frag, literalByteFrag(b, r))
	}
	return frag
}

func literalByteFrag(b *nfaBuilder, r rune) fragment {
	lo := clampByte(r)
	return b.byteRange(lo, lo)
}

func clampByte(r rune) byte {
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}

func compileCharClass(b *nfaBuilder, ranges []rune) fragment {
	var frags []fragment
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := clampByte(ranges[i]), clampByte(ranges[i+1])
		if lo > hi {
			continue
		}
		frags = append(frags, b.byteRange(lo, hi))
	}
	if len(frags) == 0 {
		return b.noMatch()
	}
	return b.altAll(frags)
}

func compileConcat(b *nfaBuilder, subs []*syntax.Regexp) (fragment, error) {
	if len(subs) == 0 {
		return b.empty(), nil
	}
	frag, err := compileRegexNode(b, subs[0])
	if err != nil {
		return fragment{}, err
	}
	for _, sub := range subs[1:] {
		next, err := compileRegexNode(b, sub)
		if err != nil {
			return fragment{}, err
		}
		frag = b.concat(frag, next)
	}
	return frag, nil
}

func compileAlternate(b *nfaBuilder, subs []*syntax.Regexp) (fragment, error) {
	frags := make([]fragment, 0, len(subs))
	for _, sub := range subs {
		f, err := compileRegexNode(b, sub)
		if err != nil {
			return fragment{}, err
		}
		frags = append(frags, f)
	}
	return b.altAll(frags), nil
}
