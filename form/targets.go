package form

import "github.com/linesmerrill/report-nui/models"

// SetTargetChecked checks or unchecks a nearby player. Targets are
// recomputed afterwards, which drops a check for a player not in nearby.
func (d *Draft) SetTargetChecked(nearby []models.NearbyPlayer, fivemID int, checked bool) {
	if d.checked == nil {
		d.checked = map[int]bool{}
	}
	if checked {
		d.checked[fivemID] = true
	} else {
		delete(d.checked, fivemID)
	}
	d.RenderTargets(nearby)
}

// RenderTargets rebuilds Targets from the checked entries of nearby, in
// nearby order. Checks for players no longer in the list are dropped, so
// Targets is always a subset of the latest list.
func (d *Draft) RenderTargets(nearby []models.NearbyPlayer) {
	targets := []models.Target{}
	present := make(map[int]bool, len(nearby))
	for _, p := range nearby {
		if present[p.FivemID] {
			continue
		}
		present[p.FivemID] = true
		if d.checked[p.FivemID] {
			targets = append(targets, models.Target{FivemID: p.FivemID, Name: p.Name})
		}
	}
	for id := range d.checked {
		if !present[id] {
			delete(d.checked, id)
		}
	}
	d.Targets = targets
}

// IsTargetChecked reports whether a nearby player is currently checked
func (d *Draft) IsTargetChecked(fivemID int) bool {
	return d.checked[fivemID]
}
