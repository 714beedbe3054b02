// Package all registers every game with the registry.
package all

import (
	_ "github.com/vovakirdan/math-arcade/internal/games/calculator"
	_ "github.com/vovakirdan/math-arcade/internal/games/fastcalc"
	_ "github.com/vovakirdan/math-arcade/internal/games/findoperator"
	_ "github.com/vovakirdan/math-arcade/internal/games/matchcards"
	_ "github.com/vovakirdan/math-arcade/internal/games/mathgrid"
	_ "github.com/vovakirdan/math-arcade/internal/games/mentalseq"
	_ "github.com/vovakirdan/math-arcade/internal/games/missingnumber"
	_ "github.com/vovakirdan/math-arcade/internal/games/picture"
	_ "github.com/vovakirdan/math-arcade/internal/games/pyramid"
	_ "github.com/vovakirdan/math-arcade/internal/games/sqroot"
	_ "github.com/vovakirdan/math-arcade/internal/games/triangle"
)
