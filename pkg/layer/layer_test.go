package layer

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/genlayer/pkg/area"
	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/rng"
)

var testCtx = rng.Derive(12345, 1, 100)

// fill returns a sampler with the same value everywhere.
func fill(v int) area.Func {
	return func(x, z int) int { return v }
}

// island returns a sampler with center at the origin and bg elsewhere.
func island(bg, center int) area.Func {
	return func(x, z int) int {
		if x == 0 && z == 0 {
			return center
		}
		return bg
	}
}

// cells returns a sampler backed by an explicit map with a default.
func cells(bg int, m map[area.Point]int) area.Func {
	return func(x, z int) int {
		if v, ok := m[area.Point{X: x, Z: z}]; ok {
			return v
		}
		return bg
	}
}

// distinct gives every coordinate its own value.
func distinct(x, z int) int { return x*100003 + z }

func collect(fn area.Func, r int) map[int]int {
	out := map[int]int{}
	for x := -r; x <= r; x++ {
		for z := -r; z <= r; z++ {
			out[fn(x, z)]++
		}
	}
	return out
}

// at applies l to in and samples the origin.
func at(l Layer, in ...area.Sampler) int {
	return l.Apply(testCtx, in...)(0, 0)
}

func TestCheckArity(t *testing.T) {
	if err := CheckArity(Zoom, []area.Sampler{fill(0)}); err != nil {
		t.Errorf("CheckArity(zoom, 1 input) = %v", err)
	}
	bad := []struct {
		name string
		l    Layer
		in   []area.Sampler
	}{
		{"no inputs", Zoom, nil},
		{"too few", RiverMix, []area.Sampler{fill(0)}},
		{"nil input", Zoom, []area.Sampler{nil}},
	}
	for _, tt := range bad {
		if err := CheckArity(tt.l, tt.in); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Apply with missing inputs should panic")
		}
	}()
	Zoom.Apply(testCtx)
}

func TestLayersAreDeterministic(t *testing.T) {
	reg := biome.Default()
	parent := area.Func(func(x, z int) int { return (x*7 + z*13) & 3 })
	layers := []Layer{
		AddIsland, RemoveTooMuchOcean, AddSnow, CoolWarmEdge, HeatIceEdge,
		SpecialEdge, AddMushroomIsland, DeepOcean, RiverInit, River, Smooth,
		Zoom, FuzzyZoom, VoronoiZoom, RareBiome, Biome(DefaultBiomeTable, NoFixedBiome),
		BiomeEdge(reg), Shore(reg),
	}
	for _, l := range layers {
		a := l.Apply(testCtx, parent)
		b := l.Apply(testCtx, parent)
		for x := -6; x <= 6; x++ {
			for z := -6; z <= 6; z++ {
				if va, vb := a(x, z), b(x, z); va != vb {
					t.Fatalf("%s at (%d,%d): %d != %d", l.Name(), x, z, va, vb)
				}
			}
		}
	}
}

func TestIsland(t *testing.T) {
	fn := Island.Apply(testCtx)
	if got := fn(0, 0); got != ClimateWarm {
		t.Errorf("origin = %d, want warm land", got)
	}
	seen := collect(fn, 20)
	if len(seen) != 2 {
		t.Errorf("values = %v, want ocean and warm only", seen)
	}
	if seen[ClimateOcean] <= seen[ClimateWarm] {
		t.Errorf("ocean %d should outnumber land %d", seen[ClimateOcean], seen[ClimateWarm])
	}
}

func TestZoomSelectsParentBlock(t *testing.T) {
	for _, l := range []Layer{Zoom, FuzzyZoom} {
		fn := l.Apply(testCtx, area.Func(distinct))
		for x := -9; x <= 9; x++ {
			for z := -9; z <= 9; z++ {
				px, pz := x>>1, z>>1
				got := fn(x, z)
				if x&1 == 0 && z&1 == 0 {
					if got != distinct(px, pz) {
						t.Fatalf("%s at (%d,%d) = %d, want the parent %d", l.Name(), x, z, got, distinct(px, pz))
					}
					continue
				}
				parents := []int{
					distinct(px, pz), distinct(px+1, pz),
					distinct(px, pz+1), distinct(px+1, pz+1),
				}
				if !slices.Contains(parents, got) {
					t.Fatalf("%s at (%d,%d) = %d, not in parent block %v", l.Name(), x, z, got, parents)
				}
			}
		}
	}
}

func TestZoomKeepsUniformRegions(t *testing.T) {
	got := collect(Zoom.Apply(testCtx, fill(7)), 10)
	if len(got) != 1 || got[7] != 21*21 {
		t.Errorf("zoom of uniform 7 = %v", got)
	}
}

func TestMajority(t *testing.T) {
	s := testCtx.At(0, 0)
	tests := []struct {
		a, b, c, d, want int
	}{
		{1, 2, 2, 2, 2},
		{1, 1, 1, 2, 1},
		{1, 1, 2, 3, 1},
		{1, 2, 1, 3, 1},
		{1, 2, 3, 1, 1},
		{1, 2, 2, 3, 2},
		{1, 2, 3, 2, 2},
		{1, 2, 3, 3, 3},
	}
	for _, tt := range tests {
		if got := majority(&s, tt.a, tt.b, tt.c, tt.d); got != tt.want {
			t.Errorf("majority(%d, %d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
	if got := majority(&s, 1, 2, 3, 4); got < 1 || got > 4 {
		t.Errorf("majority of distinct values = %d, want one of them", got)
	}
}

func TestVoronoiSelectsEnclosingParents(t *testing.T) {
	fn := VoronoiZoom.Apply(testCtx, area.Func(distinct))
	counts := map[int]int{}
	for x := -17; x <= 17; x++ {
		for z := -17; z <= 17; z++ {
			k, m := (x-2)>>2, (z-2)>>2
			got := fn(x, z)
			parents := []int{
				distinct(k, m), distinct(k+1, m),
				distinct(k, m+1), distinct(k+1, m+1),
			}
			if !slices.Contains(parents, got) {
				t.Fatalf("(%d,%d) = %d, not in enclosing parents %v", x, z, got, parents)
			}
			counts[got]++
		}
	}
	if len(counts) <= 40 {
		t.Errorf("only %d distinct parents used", len(counts))
	}
}

func TestAddIsland(t *testing.T) {
	if got := at(AddIsland, fill(ClimateWarm)); got != ClimateWarm {
		t.Errorf("interior land = %d, want stable", got)
	}
	if got := at(AddIsland, fill(ClimateOcean)); got != ClimateOcean {
		t.Errorf("open ocean = %d, want stable", got)
	}

	// Ocean centre with freezing land diagonals: grows land or keeps freezing.
	corners := cells(ClimateOcean, map[area.Point]int{
		{X: -1, Z: -1}: ClimateFreezing, {X: 1, Z: -1}: ClimateFreezing,
		{X: -1, Z: 1}: ClimateFreezing, {X: 1, Z: 1}: ClimateFreezing,
	})
	if got := at(AddIsland, corners); got != ClimateFreezing {
		t.Errorf("ocean among freezing corners = %d, want freezing", got)
	}

	// Land centre surrounded by ocean either erodes to that ocean or stays.
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		ctx := rng.Derive(int64(i), 1, 1)
		seen[AddIsland.Apply(ctx, island(biome.ColdOcean, ClimateCold))(0, 0)] = true
	}
	if len(seen) != 2 || !seen[ClimateCold] || !seen[biome.ColdOcean] {
		t.Errorf("outcomes = %v, want cold land and cold ocean", seen)
	}
}

func TestRemoveTooMuchOcean(t *testing.T) {
	if got := at(RemoveTooMuchOcean, island(ClimateWarm, ClimateOcean)); got != ClimateOcean {
		t.Errorf("ocean touching land = %d, want kept", got)
	}

	seen := collect(RemoveTooMuchOcean.Apply(testCtx, fill(ClimateOcean)), 10)
	if len(seen) != 2 || seen[ClimateWarm] == 0 {
		t.Errorf("open ocean outcomes = %v, want ocean and warm", seen)
	}
}

func TestAddSnow(t *testing.T) {
	if got := AddSnow.Apply(testCtx, fill(biome.FrozenOcean))(1, 1); got != biome.FrozenOcean {
		t.Errorf("ocean = %d, want unchanged", got)
	}
	seen := collect(AddSnow.Apply(testCtx, fill(ClimateWarm)), 10)
	allowed := []int{ClimateWarm, ClimateCold, ClimateFreezing}
	for v := range seen {
		if !slices.Contains(allowed, v) {
			t.Errorf("unexpected climate %d", v)
		}
	}
	if len(seen) != 3 {
		t.Errorf("outcomes = %v, want all three climates", seen)
	}
}

func TestClimateEdges(t *testing.T) {
	tests := []struct {
		name         string
		l            Layer
		around, want int
		center       int
	}{
		{"warm by freezing", CoolWarmEdge, ClimateFreezing, ClimateTemperate, ClimateWarm},
		{"warm by cold", CoolWarmEdge, ClimateCold, ClimateTemperate, ClimateWarm},
		{"warm by temperate", CoolWarmEdge, ClimateTemperate, ClimateWarm, ClimateWarm},
		{"freezing by warm", HeatIceEdge, ClimateWarm, ClimateCold, ClimateFreezing},
		{"freezing by temperate", HeatIceEdge, ClimateTemperate, ClimateCold, ClimateFreezing},
		{"freezing by cold", HeatIceEdge, ClimateCold, ClimateFreezing, ClimateFreezing},
	}
	for _, tt := range tests {
		if got := at(tt.l, island(tt.around, tt.center)); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSpecialEdge(t *testing.T) {
	if got := collect(SpecialEdge.Apply(testCtx, fill(0)), 10); len(got) != 1 || got[0] != 21*21 {
		t.Errorf("ocean should never be flagged: %v", got)
	}

	flagged := 0
	for v, n := range collect(SpecialEdge.Apply(testCtx, fill(ClimateCold)), 30) {
		if v&^SpecialMask != ClimateCold {
			t.Errorf("climate changed: %d", v)
		}
		if v&SpecialMask != 0 {
			flagged += n
		}
	}
	if flagged == 0 {
		t.Error("no cell was flagged special")
	}
}

func TestAddMushroomIsland(t *testing.T) {
	seen := collect(AddMushroomIsland.Apply(testCtx, fill(ClimateOcean)), 40)
	if seen[biome.MushroomFields] == 0 {
		t.Error("no mushroom island in open ocean")
	}
	if seen[ClimateOcean] <= seen[biome.MushroomFields] {
		t.Errorf("mushroom islands should be rare: %v", seen)
	}
	if got := at(AddMushroomIsland, island(ClimateWarm, ClimateOcean)); got != ClimateOcean {
		t.Errorf("ocean next to land = %d, want kept", got)
	}
}

func TestDeepOcean(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{biome.Ocean, biome.DeepOcean},
		{biome.WarmOcean, biome.DeepWarmOcean},
		{biome.LukewarmOcean, biome.DeepLukewarmOcean},
		{biome.ColdOcean, biome.DeepColdOcean},
		{biome.FrozenOcean, biome.DeepFrozenOcean},
		{ClimateWarm, ClimateWarm},
	}
	for _, tt := range tests {
		if got := at(DeepOcean, fill(tt.in)); got != tt.want {
			t.Errorf("DeepOcean(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	coast := cells(biome.Ocean, map[area.Point]int{{X: 1, Z: 0}: ClimateWarm})
	if got := at(DeepOcean, coast); got != biome.Ocean {
		t.Errorf("coastal ocean = %d, want shallow", got)
	}
}

func TestRiverInit(t *testing.T) {
	if got := at(RiverInit, fill(biome.Ocean)); got != biome.Ocean {
		t.Errorf("ocean = %d, want unchanged", got)
	}
	for v := range collect(RiverInit.Apply(testCtx, fill(biome.Plains)), 5) {
		if v < 2 || v > 300000 {
			t.Errorf("river noise %d out of [2, 300000]", v)
		}
	}
}

func TestRiver(t *testing.T) {
	tests := []struct {
		name string
		in   area.Func
		want int
	}{
		{"uniform", fill(4), NoRiver},
		{"same parity", island(6, 10), NoRiver},
		{"parity change", island(6, 11), biome.River},
		{"zero neighbours", island(0, 4), biome.River},
	}
	for _, tt := range tests {
		if got := at(River, tt.in); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		name       string
		n, e, s, w int
		want       []int
	}{
		{"horizontal pair", 1, 5, 2, 5, []int{5}},
		{"vertical pair", 6, 1, 6, 2, []int{6}},
		{"no pair", 1, 2, 3, 4, []int{9}},
		{"both pairs", 6, 5, 6, 5, []int{5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cells(9, map[area.Point]int{
				{X: 0, Z: -1}: tt.n, {X: 1, Z: 0}: tt.e, {X: 0, Z: 1}: tt.s, {X: -1, Z: 0}: tt.w,
			})
			if got := at(Smooth, m); !slices.Contains(tt.want, got) {
				t.Errorf("got %d, want one of %v", got, tt.want)
			}
		})
	}
}

func TestRiverMix(t *testing.T) {
	tests := []struct {
		biome, river, want int
	}{
		{biome.DeepOcean, biome.River, biome.DeepOcean},
		{biome.Plains, biome.River, biome.River},
		{biome.SnowyTundra, biome.River, biome.FrozenRiver},
		{biome.MushroomFields, biome.River, biome.MushroomFieldShore},
		{biome.Plains, NoRiver, biome.Plains},
	}
	for _, tt := range tests {
		if got := at(RiverMix, fill(tt.biome), fill(tt.river)); got != tt.want {
			t.Errorf("RiverMix(%d, %d) = %d, want %d", tt.biome, tt.river, got, tt.want)
		}
	}
}

func TestMixOceans(t *testing.T) {
	nearLand := cells(biome.Ocean, map[area.Point]int{{X: 8, Z: -4}: biome.Plains})
	offGrid := cells(biome.Ocean, map[area.Point]int{{X: 3, Z: 0}: biome.Plains})

	tests := []struct {
		name  string
		land  area.Func
		ocean int
		want  int
	}{
		{"land kept", fill(biome.Forest), biome.WarmOcean, biome.Forest},
		{"open water", fill(biome.Ocean), biome.WarmOcean, biome.WarmOcean},
		{"deep cold", fill(biome.DeepOcean), biome.ColdOcean, biome.DeepColdOcean},
		{"deep frozen", fill(biome.DeepOcean), biome.FrozenOcean, biome.DeepFrozenOcean},
		{"warm has no deep variant", fill(biome.DeepOcean), biome.WarmOcean, biome.WarmOcean},
		{"warm near land", nearLand, biome.WarmOcean, biome.LukewarmOcean},
		{"frozen near land", nearLand, biome.FrozenOcean, biome.ColdOcean},
		{"land off the sampling grid", offGrid, biome.WarmOcean, biome.WarmOcean},
	}
	for _, tt := range tests {
		if got := at(MixOceans, tt.land, fill(tt.ocean)); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOcean(t *testing.T) {
	a := Ocean.Apply(testCtx)
	b := Ocean.Apply(rng.Derive(testCtx.WorldSeed, 9, 77))
	oceans := []int{biome.Ocean, biome.WarmOcean, biome.LukewarmOcean, biome.ColdOcean, biome.FrozenOcean}
	for x := -40; x <= 40; x += 3 {
		for z := -40; z <= 40; z += 3 {
			v := a(x, z)
			if !slices.Contains(oceans, v) {
				t.Fatalf("(%d,%d) = %d, not an ocean", x, z, v)
			}
			if v != b(x, z) {
				t.Fatalf("(%d,%d): ocean field should depend only on the world seed", x, z)
			}
		}
	}
}

func TestOceanThresholds(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, biome.Ocean},
		{math.Copysign(0, -1), biome.Ocean},
		{0.2, biome.Ocean},
		{0.2000001, biome.LukewarmOcean},
		{0.4, biome.LukewarmOcean},
		{0.4000001, biome.WarmOcean},
		{-0.2, biome.Ocean},
		{-0.2000001, biome.ColdOcean},
		{-0.4, biome.ColdOcean},
		{-0.4000001, biome.FrozenOcean},
	}
	for _, tt := range tests {
		if got := oceanFor(tt.v); got != tt.want {
			t.Errorf("oceanFor(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestOceanLatticeIsPlainOcean(t *testing.T) {
	// Every octave of the field is exactly zero on integer lattice points.
	for _, seed := range []int64{0, 1, 12345, -987654321} {
		fn := Ocean.Apply(rng.Derive(seed, 1, 2))
		for x := -64; x <= 64; x += oceanScale {
			for z := -64; z <= 64; z += oceanScale {
				if got := fn(x, z); got != biome.Ocean {
					t.Fatalf("seed %d (%d,%d) = %d, want plain ocean", seed, x, z, got)
				}
			}
		}
	}
}

func TestOceanPeriodic(t *testing.T) {
	fn := Ocean.Apply(testCtx)
	huge := math.MaxInt - math.MaxInt%oceanPeriod
	for x := -20; x <= 20; x += 7 {
		for z := -20; z <= 20; z += 5 {
			want := fn(x, z)
			for _, p := range [][2]int{
				{x + oceanPeriod, z},
				{x, z - 3*oceanPeriod},
				{x + huge - oceanPeriod, z},
				{x, z - huge + oceanPeriod},
			} {
				if got := fn(p[0], p[1]); got != want {
					t.Fatalf("(%d,%d) = %d, want %d as at (%d,%d)", p[0], p[1], got, want, x, z)
				}
			}
		}
	}
}
