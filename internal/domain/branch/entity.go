package branch

import "vista-ecoupon/internal/pkg/geo"

// Branch is a physical store location. Nearest-branch resolution feeds the
// branch name recorded on redemption; when resolution fails the client picks
// from the full list instead.
type Branch struct {
	ID   int
	Name string
	Lat  float64
	Lng  float64
}

// Nearest returns the branch closest to p, or nil for an empty slice.
func Nearest(branches []Branch, p geo.Point) *Branch {
	var closest *Branch
	minKm := -1.0
	for i := range branches {
		d := geo.HaversineKm(p, geo.Point{Lat: branches[i].Lat, Lng: branches[i].Lng})
		if closest == nil || d < minKm {
			closest = &branches[i]
			minKm = d
		}
	}
	return closest
}
