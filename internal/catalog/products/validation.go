package products

import "math"

// NormalizeCreate applies the registration business rules in submission
// order and rewrites the input to its stored form. The first violated rule
// wins; later fields are not inspected.
func NormalizeCreate(in *CreateInput) error {
	if err := normalizeQuantities(in); err != nil {
		return err
	}
	if err := normalizeNotice(in); err != nil {
		return err
	}
	return normalizeDiscount(in)
}

func normalizeQuantities(in *CreateInput) error {
	if in.MinimumQuantity == 0 {
		in.MinimumQuantity = defaultMinimumQuantity
	}
	if in.MaximumQuantity == 0 {
		in.MaximumQuantity = defaultMaximumQuantity
	}
	if in.MinimumQuantity > in.MaximumQuantity {
		return ErrQuantityRange
	}
	return nil
}

func normalizeNotice(in *CreateInput) error {
	if !in.IsProductNotice {
		in.Manufacturer = nil
		in.ManufacturingDate = nil
		in.OriginTypeID = nil
		return nil
	}
	if in.Manufacturer == nil || *in.Manufacturer == "" ||
		in.ManufacturingDate == nil || in.OriginTypeID == nil {
		return ErrManufactureInfoRequired
	}
	return nil
}

func normalizeDiscount(in *CreateInput) error {
	if in.DiscountRate == 0 {
		in.DiscountedPrice = in.OriginPrice
		in.DiscountStartDate = nil
		in.DiscountEndDate = nil
		return nil
	}

	if in.DiscountedPrice > in.OriginPrice {
		return ErrDiscountedExceedsOrigin
	}
	expected := int64(math.Round(float64(in.OriginPrice) * (1 - float64(in.DiscountRate)/100)))
	if in.DiscountedPrice != expected {
		return ErrWrongDiscountedPrice
	}
	// A discount without dates is an open-ended one; only a one-sided
	// window is rejected.
	if (in.DiscountStartDate == nil) != (in.DiscountEndDate == nil) {
		return ErrDiscountDateRequired
	}
	if in.DiscountStartDate != nil && in.DiscountStartDate.After(*in.DiscountEndDate) {
		return ErrDiscountDateInverted
	}
	return nil
}

// StoredDiscountRate converts the submitted percentage to the fraction
// persisted on the row.
func StoredDiscountRate(percent int) float64 {
	return float64(percent) / 100
}

// ValidateSearch checks the listing filters that carry cross-field rules.
func ValidateSearch(in SearchInput) error {
	if (in.LookupStartDate == nil) != (in.LookupEndDate == nil) {
		return ErrLookupDateRequired
	}
	if in.LookupStartDate != nil && in.LookupStartDate.After(*in.LookupEndDate) {
		return ErrLookupDateInverted
	}
	for _, id := range in.AttributeTypeIDs {
		if id < 1 || id > 7 {
			return ErrInvalidSellerAttributeType
		}
	}
	return nil
}
