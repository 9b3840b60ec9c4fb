// Package estimate computes required material quantity and cost for a job
// from its surface area, work type, and chosen material. It is pure: callers
// decide whether to commit the result to a site record.
package estimate

import "fmt"

type WorkType string

const (
	Paint        WorkType = "Paint"
	Plaster      WorkType = "Plaster"
	WallCovering WorkType = "WallCovering"
	Flooring     WorkType = "Flooring"
)

// WorkTypes in menu order.
var WorkTypes = []WorkType{Paint, Plaster, WallCovering, Flooring}

// paintCoverage is the consumption per m² per coat for paint work.
const paintCoverage = 0.15

// DefaultCoats is the pre-selected coat count for paint jobs.
const DefaultCoats = 2

// unitPrices is the professional price list, per consumption unit.
var unitPrices = map[string]float64{
	"Peinture Glycéro":                 20.0,
	"Peinture Acrylique":               15.0,
	"Peinture Satinée":                 18.0,
	"Peinture Mate":                    16.0,
	"Peinture spéciale pièces humides": 22.0,
	"Enduit de rebouchage":             5.0,
	"Enduit de lissage":                6.0,
	"Enduit de dégrossissage":          4.0,
	"Enduit gouttelettes":              7.0,
	"Revêtement mural standard":        10.0,
	"Revêtement mural premium":         15.0,
	"Revêtement de sol":                25.0,
}

// materials maps each work type to its selectable materials.
var materials = map[WorkType][]string{
	Paint: {
		"Peinture Glycéro",
		"Peinture Acrylique",
		"Peinture Satinée",
		"Peinture Mate",
		"Peinture spéciale pièces humides",
	},
	Plaster: {
		"Enduit de rebouchage",
		"Enduit de lissage",
		"Enduit de dégrossissage",
		"Enduit gouttelettes",
	},
	WallCovering: {
		"Revêtement mural standard",
		"Revêtement mural premium",
	},
	Flooring: {
		"Revêtement de sol",
	},
}

// MaterialsFor returns the selectable materials for a work type, nil for an
// unknown type.
func MaterialsFor(work WorkType) []string {
	return append([]string(nil), materials[work]...)
}

// PriceFor looks up the unit price of a material. A miss means the caller's
// menu and the price list disagree, which is a programming fault, so it is an
// error rather than a silent zero.
func PriceFor(material string) (float64, error) {
	price, ok := unitPrices[material]
	if !ok {
		return 0, fmt.Errorf("no unit price for material %q", material)
	}
	return price, nil
}

// Estimate is the computed consumption and cost for one job.
type Estimate struct {
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// Compute returns the required quantity and cost. Paint consumes
// area × 0.15 × coats; every other work type consumes one unit per m² and
// ignores the coat count. The material must belong to the work type's menu.
func Compute(work WorkType, material string, surface float64, coats int) (Estimate, error) {
	if !validMaterial(work, material) {
		return Estimate{}, fmt.Errorf("material %q is not valid for work type %q", material, work)
	}
	price, err := PriceFor(material)
	if err != nil {
		return Estimate{}, err
	}
	quantity := surface
	if work == Paint {
		quantity = surface * paintCoverage * float64(coats)
	}
	return Estimate{Quantity: quantity, Cost: quantity * price}, nil
}

func validMaterial(work WorkType, material string) bool {
	for _, m := range materials[work] {
		if m == material {
			return true
		}
	}
	return false
}
