package tinytowns

// Resource is the material a resource cube is made of. Cubes sit on
// board squares & are what building footprints ask for.
type Resource string

const (
	// None marks a pattern cell with no requirement (a gap).
	// It is not a placeable resource & is skipped by AllResources.
	None Resource = ""

	Brick Resource = "brick"
	Glass Resource = "glass"
	Stone Resource = "stone"
	Wheat Resource = "wheat"
	Wood  Resource = "wood"
)

var (
	allResources = []Resource{Brick, Glass, Stone, Wheat, Wood}

	resourceindex = map[Resource]int{
		None:  0,
		Brick: 1,
		Glass: 2,
		Stone: 3,
		Wheat: 4,
		Wood:  5,
	}

	invResourceIndex = map[int]Resource{}
)

func init() {
	for k, v := range resourceindex {
		invResourceIndex[v] = k
	}
}

// ID returns the index of a resource
func (r Resource) ID() int {
	v, ok := resourceindex[r]
	if !ok {
		return 0
	}
	return v
}

// resourceForID is the inversion of Resource.ID()
func resourceForID(i int) Resource {
	res, ok := invResourceIndex[i]
	if !ok {
		return None
	}
	return res
}

// Short returns a fixed two character code for the resource,
// handy when printing boards & patterns
func (r Resource) Short() string {
	switch r {
	case Brick:
		return "Bk"
	case Glass:
		return "Gs"
	case Stone:
		return "St"
	case Wheat:
		return "Wt"
	case Wood:
		return "Wd"
	}
	return ".."
}

// AllResources returns all known Resource enums
func AllResources() []Resource {
	return allResources
}
