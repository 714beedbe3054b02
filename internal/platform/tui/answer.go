package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/math-arcade/internal/puzzle"
)

var errEmptyAnswer = errors.New("type an answer first")

// operatorAliases lets players type operators the way their keyboard has
// them.
var operatorAliases = map[string]string{
	"*": "×",
	"x": "×",
	"/": "÷",
	":": "÷",
}

// ParseAnswer converts typed input into the answer encoding of p.
//
// Multiple-choice input is a letter (a, b, ...), an option label or an
// option value. Selection and pairing use 1-based cell numbers. Placement
// and filling take values in slot order. Numbers may be separated by
// spaces or commas.
func ParseAnswer(p puzzle.Instance, input string) ([]int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errEmptyAnswer
	}

	switch p.Kind {
	case puzzle.KindChoice:
		v, err := parseChoice(p, input)
		if err != nil {
			return nil, err
		}
		return []int{v}, nil

	case puzzle.KindSelect, puzzle.KindPairs:
		nums, err := parseInts(input)
		if err != nil {
			return nil, err
		}
		for i, n := range nums {
			if n < 1 || n > len(p.Cells) {
				return nil, fmt.Errorf("no cell %d", n)
			}
			nums[i] = n - 1
		}
		if p.Kind == puzzle.KindPairs && len(nums)%2 != 0 {
			return nil, errors.New("pairs need an even number of cards")
		}
		return nums, nil

	case puzzle.KindPlace, puzzle.KindFill:
		return parseInts(input)

	default:
		n, err := strconv.Atoi(input)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", input)
		}
		return []int{n}, nil
	}
}

func parseChoice(p puzzle.Instance, input string) (int, error) {
	lower := strings.ToLower(input)

	if len(lower) == 1 && lower[0] >= 'a' && lower[0] <= 'z' {
		if i := int(lower[0] - 'a'); i < len(p.Options) && !isAlias(lower) {
			return p.Options[i], nil
		}
	}

	label := lower
	if alias, ok := operatorAliases[lower]; ok {
		label = alias
	}
	for i, l := range p.Labels {
		if i < len(p.Options) && strings.EqualFold(l, label) {
			return p.Options[i], nil
		}
	}

	if n, err := strconv.Atoi(input); err == nil && len(p.Labels) == 0 {
		for _, v := range p.Options {
			if v == n {
				return v, nil
			}
		}
	}
	return 0, fmt.Errorf("pick one of the options (a-%c)", 'a'+rune(len(p.Options)-1))
}

func isAlias(s string) bool {
	_, ok := operatorAliases[s]
	return ok
}

func parseInts(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errEmptyAnswer
	}
	return out, nil
}
