package engine

import (
	"sort"

	"github.com/fabkit/barcut/internal/model"
)

// eps absorbs float rounding on mm lengths when comparing fits.
const eps = 1e-6

// Planner runs the 1D cutting-plan algorithm: first-fit-decreasing bin
// packing with a per-cut kerf allowance.
type Planner struct {
	Settings model.PlanSettings
}

func New(settings model.PlanSettings) *Planner {
	return &Planner{Settings: settings}
}

// piece is an expanded requirement instance awaiting placement.
type piece struct {
	length float64
	tag    string
	order  int // original requirement index, keeps ties deterministic
}

// Plan assigns every required piece to a stock bar and returns the sealed
// plan. Identical inputs always produce identical plans.
//
// Pieces that cannot fit even an empty bar of the largest stock option are
// returned in CutPlan.Unplaceable rather than silently dropped; planning
// proceeds for everything else.
func (p *Planner) Plan(reqs []model.PieceRequirement, stocks []model.StockOption) (model.CutPlan, error) {
	if err := model.ValidateRequirements(reqs); err != nil {
		return model.CutPlan{}, err
	}
	options, err := model.NormalizeStockOptions(stocks)
	if err != nil {
		return model.CutPlan{}, err
	}

	kerf := p.Settings.Kerf
	maxStock := float64(model.MaxStockOption(options))
	plan := model.CutPlan{Kerf: kerf}

	// Expand requirements into individual piece instances, splitting off the
	// ones too long for any stock option.
	var pool []piece
	for i, r := range reqs {
		if r.Length > maxStock+eps {
			for n := 0; n < r.Quantity; n++ {
				plan.Unplaceable = append(plan.Unplaceable, model.PlacedPiece{Length: r.Length, Tag: r.Tag})
			}
			continue
		}
		for n := 0; n < r.Quantity; n++ {
			pool = append(pool, piece{length: r.Length, tag: r.Tag, order: i})
		}
	}

	// Largest first; the stable sort keeps equal lengths in requirement
	// order so output is reproducible.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].length > pool[j].length
	})

	for len(pool) > 0 {
		stockLen := p.openBarLength(options, pool[0].length)
		bar := model.Bar{StockLength: stockLen}
		remaining := stockLen

		for {
			idx := pickPiece(pool, remaining)
			if idx < 0 {
				break
			}
			pc := pool[idx]
			consumed := pc.length + kerf
			if consumed > remaining {
				// Tail fit: the piece runs to the bar end, so the final cut
				// only eats whatever is left past the piece.
				consumed = remaining
			}
			bar.Pieces = append(bar.Pieces, model.PlacedPiece{Length: pc.length, Tag: pc.tag})
			bar.Used += pc.length
			bar.KerfUsed += consumed - pc.length
			remaining -= consumed
			pool = append(pool[:idx], pool[idx+1:]...)
		}

		if remaining < eps {
			remaining = 0
		}
		bar.Waste = remaining
		plan.Bars = append(plan.Bars, bar)
	}

	return plan, nil
}

// openBarLength chooses the stock option a new bar is opened at.
// options are sorted ascending; largest is the biggest remaining piece.
func (p *Planner) openBarLength(options []model.StockOption, largest float64) float64 {
	if p.Settings.Policy == model.PolicySmallestFit {
		for _, o := range options {
			if largest <= float64(o)+eps {
				return float64(o)
			}
		}
	}
	return float64(options[len(options)-1])
}

// pickPiece returns the index of the largest remaining piece that fits the
// bar's remaining capacity, or -1 when nothing fits. The pool is sorted
// descending, so the first fit found is the largest. A piece that fills the
// capacity exactly is necessarily that first fit (nothing longer can fit at
// all), which makes perfect-fit priority a natural special case of this
// scan rather than a separate pass.
func pickPiece(pool []piece, remaining float64) int {
	for i, pc := range pool {
		if fits(pc.length, remaining) {
			return i
		}
	}
	return -1
}

// fits reports whether a piece can be placed in the remaining capacity.
// The trailing cut needs no kerf when the piece runs to the bar end, so a
// piece fits whenever its own length does; mid-bar placements are charged
// the full kerf by the caller.
func fits(length, remaining float64) bool {
	return length <= remaining+eps
}
