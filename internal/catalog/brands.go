package catalog

import "slices"

type BrandClass int

const (
	BrandDomestic BrandClass = iota
	BrandImport
	BrandLuxury
)

var (
	luxuryBrands = []string{"BMW", "Mercedes", "Audi", "Lexus", "Acura", "Infiniti", "Cadillac"}
	importBrands = []string{"Toyota", "Honda", "Nissan", "Subaru", "Mazda", "Mitsubishi"}
)

// ClassifyBrand matches make names exactly as listed; luxury is checked first.
func ClassifyBrand(brand string) BrandClass {
	switch {
	case slices.Contains(luxuryBrands, brand):
		return BrandLuxury
	case slices.Contains(importBrands, brand):
		return BrandImport
	default:
		return BrandDomestic
	}
}
