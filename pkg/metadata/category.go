package metadata

import (
	"fmt"
	"strings"
)

type ProductCategory string

const (
	CategoryOyster     ProductCategory = "oyster"
	CategorySeafood    ProductCategory = "seafood"
	CategoryPackaging  ProductCategory = "packaging"
	CategoryEquipment  ProductCategory = "equipment"
	CategoryConsumable ProductCategory = "consumable"
	CategoryWine       ProductCategory = "wine"
	CategoryOther      ProductCategory = "other"
)

func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryOyster, CategorySeafood, CategoryPackaging, CategoryEquipment, CategoryConsumable, CategoryWine, CategoryOther:
		return true
	default:
		return false
	}
}

func NewProductCategory(value string) (ProductCategory, error) {
	normalized := strings.Replace(strings.ToLower(strings.TrimSpace(value)), " ", "-", -1)
	category := ProductCategory(normalized)
	if !category.IsValid() {
		return category, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s, %s, %s, %s",
			CategoryOyster, CategorySeafood, CategoryPackaging, CategoryEquipment, CategoryConsumable, CategoryWine, CategoryOther,
		)
	}

	return category, nil
}

func (c ProductCategory) String() string {
	return string(c)
}
