package layer

import "github.com/matzehuels/genlayer/pkg/rng"

// AddSnow assigns a climate to every land cell: freezing and cold one time
// in six each, warm otherwise. One draw per land cell.
var AddSnow = Pixel("add_snow", func(s *rng.Stream, v int) int {
	if shallow(v) {
		return v
	}
	switch s.Next(6) {
	case 0:
		return ClimateFreezing
	case 1:
		return ClimateCold
	default:
		return ClimateWarm
	}
})

// CoolWarmEdge puts a temperate buffer between warm land and cold or
// freezing neighbours.
var CoolWarmEdge = Castle("edge_cool_warm", func(s *rng.Stream, n, e, so, w, c int) int {
	coldish := func(v int) bool { return v == ClimateCold || v == ClimateFreezing }
	if c == ClimateWarm && any4(coldish, n, e, w, so) {
		return ClimateTemperate
	}
	return c
})

// HeatIceEdge puts a cold buffer between freezing land and warm or
// temperate neighbours.
var HeatIceEdge = Castle("edge_heat_ice", func(s *rng.Stream, n, e, so, w, c int) int {
	warmish := func(v int) bool { return v == ClimateWarm || v == ClimateTemperate }
	if c == ClimateFreezing && any4(warmish, n, e, w, so) {
		return ClimateCold
	}
	return c
})

// SpecialEdge flags one land cell in thirteen as special, storing a random
// non-zero nibble in bits 8-11.
var SpecialEdge = Pixel("edge_special", func(s *rng.Stream, v int) int {
	if !shallow(v) && s.Next(13) == 0 {
		v |= ((1 + s.Next(15)) << 8) & SpecialMask
	}
	return v
})
