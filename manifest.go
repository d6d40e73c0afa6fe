package nvstore

import (
	"encoding/json"
	"fmt"
	"os"
)

// sidecar manifest: records the placement geometry of every container planned
// inside a file region, so that reopening with different geometry fails fast
// instead of silently misreading the blocks. The blocks themselves stay
// geometry-free for layout compatibility.

func manifestPath(base string) string { return base + ".manifest" }

type manifest struct {
	Placements []Placement `json:"placements"`
}

// VerifyPlan checks a file region's sidecar manifest against the plan.
//
// On first open (no manifest yet) the plan is written out. On subsequent
// opens every placement must match kind, offset, capacity and element size
// exactly; any difference returns an error before a container can be attached
// over a misinterpreted block. Memory regions have no sessions to guard and
// always verify clean.
func (r *Region) VerifyPlan(p *Plan) error {
	if r.filePath == "" {
		return nil
	}
	path := manifestPath(r.filePath)
	want := manifest{Placements: p.Placements()}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// first time: write file
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create manifest file: %w", err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(want); err != nil {
			return fmt.Errorf("encode manifest: %w", err)
		}
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest file: %w", err)
	}
	defer f.Close()
	var have manifest
	if err := json.NewDecoder(f).Decode(&have); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	if len(have.Placements) != len(want.Placements) {
		return fmt.Errorf("manifest mismatch: %d placements persisted, %d planned",
			len(have.Placements), len(want.Placements))
	}
	for i, h := range have.Placements {
		w := want.Placements[i]
		if h != w {
			return fmt.Errorf("manifest mismatch at placement %d: persisted %+v, planned %+v", i, h, w)
		}
	}
	return nil
}
