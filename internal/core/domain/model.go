package domain

// Region identifies a comparison region that members can belong to.
type Region string

const (
	RegionAOnly        Region = "a_only"
	RegionIntersection Region = "intersection"
	RegionBOnly        Region = "b_only"
	RegionUnion        Region = "union"
)

// Result holds the outcome of a list comparison.
type Result struct {
	Name         string
	LabelA       string
	LabelB       string
	SetA         []string
	SetB         []string
	Intersection []string
	Union        []string
	AOnly        []string
	BOnly        []string
	// TotalA and TotalB are the token counts before deduplication.
	TotalA int
	TotalB int
	// Jaccard is |intersection| / |union|, 0 when the union is empty.
	Jaccard float64
	// Overlap is |intersection| / min(|A|, |B|), 0 when either set is empty.
	Overlap float64
	Details map[string]interface{}
}

// Members returns the member list for the given region.
func (r Result) Members(region Region) []string {
	switch region {
	case RegionAOnly:
		return r.AOnly
	case RegionIntersection:
		return r.Intersection
	case RegionBOnly:
		return r.BOnly
	case RegionUnion:
		return r.Union
	default:
		return nil
	}
}
