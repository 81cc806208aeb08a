package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/pipeline"
	"github.com/matzehuels/genlayer/pkg/render/raster"
)

// Explorer limits.
const (
	minStride    = 1
	maxStride    = 1024
	panCells     = 8 // cells moved per key press
	legendRows   = 8
	headerLines  = 2
	footerLines  = 3
	defaultCols  = 80
	defaultLines = 24
)

// exploreChains are the chains cycled with tab.
var exploreChains = []string{
	pipeline.ChainZoomed,
	pipeline.ChainBiomes,
	pipeline.BranchLandSea,
	pipeline.BranchBiomeBase,
	pipeline.BranchOceans,
	pipeline.BranchRivers,
}

var (
	exploreCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	exploreErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// exploreCommand creates the interactive map explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		x, z   int
		stride int
		chain  string
	)

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the world interactively in the terminal",
		Long: `Browse the world in the terminal. Every character is one sampled cell.

Keys:
  arrows, hjkl   pan
  + / -          zoom out / in (double or halve the stride)
  tab            cycle chains
  L              toggle the biome legend
  q              quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			sess, err := runner.Session(ctx, c.Config.World.Seed, c.Config.Settings())
			if err != nil {
				return err
			}
			m, err := newExploreModel(ctx, sess, chain, x, z, stride)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "x coordinate of the centre")
	cmd.Flags().IntVar(&z, "z", 0, "z coordinate of the centre")
	cmd.Flags().IntVar(&stride, "stride", 16, "blocks per character")
	cmd.Flags().StringVar(&chain, "chain", pipeline.ChainZoomed, "initial chain")

	return cmd
}

// =============================================================================
// exploreModel - Interactive map view
// =============================================================================

// exploreModel is the bubbletea model of the explorer. It resamples the
// visible window after every key press that changes it.
type exploreModel struct {
	ctx     context.Context
	session *pipeline.Session
	reg     *biome.Registry
	palette raster.Palette
	chains  []string
	grids   map[string]*pipeline.Grid

	chain  int
	x, z   int // centre in blocks
	stride int
	cols   int
	rows   int
	legend bool

	region *pipeline.Region
	err    error
}

func newExploreModel(ctx context.Context, sess *pipeline.Session, chain string, x, z, stride int) (exploreModel, error) {
	chains := slices.Clone(exploreChains)
	idx := slices.Index(chains, chain)
	if idx < 0 {
		if _, err := sess.Chains.Chain(chain); err != nil {
			return exploreModel{}, err
		}
		chains = append(chains, chain)
		idx = len(chains) - 1
	}

	reg := biome.Default()
	m := exploreModel{
		ctx:     ctx,
		session: sess,
		reg:     reg,
		palette: raster.RegistryPalette(reg),
		chains:  chains,
		grids:   make(map[string]*pipeline.Grid),
		chain:   idx,
		x:       x,
		z:       z,
		stride:  min(max(stride, minStride), maxStride),
		cols:    defaultCols,
		rows:    defaultLines - headerLines - footerLines,
	}
	m.resample()
	return m, nil
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.z -= panCells * m.stride
		case "down", "j":
			m.z += panCells * m.stride
		case "left", "h":
			m.x -= panCells * m.stride
		case "right", "l":
			m.x += panCells * m.stride
		case "+", "=":
			m.stride = min(m.stride*2, maxStride)
		case "-", "_":
			m.stride = max(m.stride/2, minStride)
		case "tab":
			m.chain = (m.chain + 1) % len(m.chains)
		case "L":
			m.legend = !m.legend
			return m, nil
		default:
			return m, nil
		}
		m.resample()
	case tea.WindowSizeMsg:
		m.cols = max(msg.Width, 1)
		m.rows = max(msg.Height-headerLines-footerLines, 1)
		m.resample()
	}
	return m, nil
}

// resample fills m.region for the current window. Errors are kept for
// display rather than ending the program.
func (m *exploreModel) resample() {
	name := m.chains[m.chain]
	g, ok := m.grids[name]
	if !ok {
		var err error
		if g, err = m.session.Grid(name); err != nil {
			m.region, m.err = nil, err
			return
		}
		m.grids[name] = g
	}
	nwX := m.x - (m.cols/2)*m.stride
	nwZ := m.z - (m.rows/2)*m.stride
	m.region, m.err = g.SampledRegion(m.ctx, nwX, nwZ, m.cols, m.rows, m.stride)
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("seed %d", m.session.Seed)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d blocks/char · centre (%d, %d)",
		m.chains[m.chain], m.stride, m.x, m.z)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(exploreErrorStyle.Render(iconError + " " + m.err.Error()))
		b.WriteString("\n")
	} else if m.region != nil {
		if m.legend {
			b.WriteString(m.legendTable())
		} else {
			b.WriteString(m.mapView())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ pan  +/- zoom  tab chain  L legend  q quit"))
	return b.String()
}

// mapView renders the region, grouping runs of equal cells into one
// styled span per run.
func (m exploreModel) mapView() string {
	r := m.region
	cc, cr := r.Width/2, r.Height/2
	var b strings.Builder
	for row := range r.Height {
		for col := 0; col < r.Width; {
			id := r.At(col, row)
			if row == cr && col == cc {
				b.WriteString(m.cellStyle(id).Inherit(exploreCursorStyle).Render("+"))
				col++
				continue
			}
			end := col + 1
			for end < r.Width && r.At(end, row) == id && !(row == cr && end == cc) {
				end++
			}
			b.WriteString(m.cellStyle(id).Render(strings.Repeat(" ", end-col)))
			col = end
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m exploreModel) cellStyle(id int) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hexColor(m.palette(id))))
}

// legendTable lists the most common cells in view.
func (m exploreModel) legendTable() string {
	type entry struct{ id, count int }
	var entries []entry
	for id, n := range m.region.Histogram() {
		entries = append(entries, entry{id, n})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	total := len(m.region.Cells)
	rows := make([][]string, 0, legendRows)
	for _, e := range entries[:min(len(entries), legendRows)] {
		rows = append(rows, []string{
			swatch(m.palette, e.id),
			m.reg.Name(e.id),
			fmt.Sprintf("%d", e.id),
			fmt.Sprintf("%.1f%%", 100*float64(e.count)/float64(total)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Biome", "ID", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render() + "\n"
}

// statusLine describes the biome under the cursor.
func (m exploreModel) statusLine() string {
	g, ok := m.grids[m.chains[m.chain]]
	if !ok || m.err != nil {
		return ""
	}
	b := g.Biome(m.x, m.z)
	return styleKey.Render("centre") + " " + biomeLabel(m.palette, b)
}
